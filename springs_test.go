package gridsearch_test

import (
	"testing"

	"github.com/maisem/gridsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountArrangements(t *testing.T) {
	tests := []struct {
		line           string
		once, unfolded uint64
	}{
		{"???.### 1,1,3", 1, 1},
		{".??..??...?##. 1,1,3", 4, 16384},
		{"?#?#?#?#?#?#?#? 1,3,1,6", 1, 1},
		{"????.#...#... 4,1,1", 1, 16},
		{"????.######..#####. 1,6,5", 4, 2500},
		{"?###???????? 3,2,1", 10, 506250},
	}
	var sum, sumUnfolded uint64
	for _, tt := range tests {
		pattern, groups, err := gridsearch.ParseSpringRow(tt.line)
		require.NoError(t, err)
		n, err := gridsearch.CountArrangements(pattern, groups)
		require.NoError(t, err)
		assert.Equal(t, tt.once, n, tt.line)
		sum += n

		p5, g5 := gridsearch.UnfoldSpringRow(pattern, groups, 5)
		assert.Len(t, g5, 5*len(groups))
		n, err = gridsearch.CountArrangements(p5, g5)
		require.NoError(t, err)
		assert.Equal(t, tt.unfolded, n, tt.line)
		sumUnfolded += n
	}
	assert.Equal(t, uint64(21), sum)
	assert.Equal(t, uint64(525152), sumUnfolded)
}

func TestCountArrangementsEdges(t *testing.T) {
	n, err := gridsearch.CountArrangements("...", nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)

	n, err = gridsearch.CountArrangements("#", nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = gridsearch.CountArrangements("??", []int{3})
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = gridsearch.CountArrangements("?x", []int{1})
	require.ErrorIs(t, err, gridsearch.ErrInvalidCell)

	for _, line := range []string{"???", "??? 1,,2", "??? 0"} {
		_, _, err := gridsearch.ParseSpringRow(line)
		require.ErrorIs(t, err, gridsearch.ErrMalformedInput, line)
	}

	p, g := gridsearch.UnfoldSpringRow(".#", []int{1}, 3)
	assert.Equal(t, ".#?.#?.#", p)
	assert.Equal(t, []int{1, 1, 1}, g)
}
