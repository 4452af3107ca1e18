package gridsearch_test

import (
	"testing"

	"github.com/maisem/gridsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLagoonVolume(t *testing.T) {
	plan, err := gridsearch.ParseDigPlan(lines(digSample), false)
	require.NoError(t, err)
	require.Len(t, plan, 14)
	assert.Equal(t, gridsearch.DigStep{Dir: gridsearch.Right, Len: 6, Color: "#70c710"}, plan[0])

	v, err := gridsearch.LagoonVolume(plan)
	require.NoError(t, err)
	assert.Equal(t, 62, v)
}

func TestParseDigPlanHex(t *testing.T) {
	plan, err := gridsearch.ParseDigPlan(lines(digSample), true)
	require.NoError(t, err)
	assert.Equal(t, gridsearch.DigStep{Dir: gridsearch.Right, Len: 461937, Color: "#70c710"}, plan[0])
	assert.Equal(t, gridsearch.DigStep{Dir: gridsearch.Down, Len: 56407, Color: "#0dc571"}, plan[1])
	assert.Equal(t, gridsearch.Up, plan[len(plan)-1].Dir)
}

func TestParseDigPlanErrors(t *testing.T) {
	tests := []struct {
		line   string
		useHex bool
	}{
		{"X 6 (#70c710)", false},
		{"RR 6 (#70c710)", false},
		{"R six (#70c710)", false},
		{"R 0 (#70c710)", false},
		{"R 6 #70c710", false},
		{"R 6 (#70c7)", false},
		{"R 6 (#zzzzzz)", false},
		{"R 6", false},
		{"R 6 (#70c714)", true},
		{"R 6 (#000000)", true},
	}
	for _, tt := range tests {
		_, err := gridsearch.ParseDigPlan([]string{tt.line}, tt.useHex)
		require.ErrorIs(t, err, gridsearch.ErrMalformedInput, "%q", tt.line)
		assert.Contains(t, err.Error(), "line 1")
	}
}

func TestDigTrench(t *testing.T) {
	plan, err := gridsearch.ParseDigPlan([]string{"R 2 (#000000)"}, false)
	require.NoError(t, err)
	g, err := gridsearch.DigTrench(plan)
	require.NoError(t, err)
	assert.Equal(t, ".....\n.###.\n.....\n", gridsearch.Render(g, func(dug bool) rune {
		if dug {
			return '#'
		}
		return '.'
	}, nil))

	huge, err := gridsearch.ParseDigPlan([]string{"R 5000 (#000000)", "D 5000 (#000000)"}, false)
	require.NoError(t, err)
	_, err = gridsearch.LagoonVolume(huge)
	require.ErrorIs(t, err, gridsearch.ErrOutOfBounds)
}
