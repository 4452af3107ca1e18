package gridsearch_test

import (
	"fmt"
	"testing"

	"github.com/maisem/gridsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalaxyDistanceSum(t *testing.T) {
	g, err := gridsearch.ParseGalaxies(lines(galaxySample))
	require.NoError(t, err)
	tests := []struct {
		factor gridsearch.Cost
		want   gridsearch.Cost
	}{
		{1, 292},
		{2, 374},
		{10, 1030},
		{100, 8410},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.factor), func(t *testing.T) {
			got, err := gridsearch.GalaxyDistanceSum(g, tt.factor, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err = gridsearch.GalaxyDistanceSum(g, 0, 0)
	require.ErrorIs(t, err, gridsearch.ErrOptionViolation)
}

func TestExpansionWeights(t *testing.T) {
	g, err := gridsearch.ParseGalaxies([]string{"#..", "...", "..#"})
	require.NoError(t, err)
	e := gridsearch.ExpansionWeights(g, 5)
	assert.Equal(t, []gridsearch.Cost{1, 5, 1}, e.Rows)
	assert.Equal(t, []gridsearch.Cost{1, 5, 1}, e.Cols)

	sum, err := gridsearch.GalaxyDistanceSum(g, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, gridsearch.Cost(12), sum)

	_, err = gridsearch.ParseGalaxies([]string{"#.*"})
	require.ErrorIs(t, err, gridsearch.ErrInvalidCell)
}
