package gridsearch_test

import (
	"testing"

	"github.com/maisem/gridsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnergized(t *testing.T) {
	g, err := gridsearch.ParseContraption(lines(beamSample))
	require.NoError(t, err)
	lit, err := gridsearch.Energized(g, gridsearch.State{Facing: gridsearch.Right})
	require.NoError(t, err)
	assert.Equal(t, 46, lit.Size())

	best, err := gridsearch.MaxEnergized(g, 4)
	require.NoError(t, err)
	assert.Equal(t, 51, best)

	serial, err := gridsearch.MaxEnergized(g, 1)
	require.NoError(t, err)
	assert.Equal(t, best, serial)
}

func TestEnergizedSplitter(t *testing.T) {
	g, err := gridsearch.ParseContraption([]string{"...", ".|.", "..."})
	require.NoError(t, err)
	lit, err := gridsearch.Energized(g, gridsearch.State{Pos: gridsearch.Coord{Row: 1, Col: 0}, Facing: gridsearch.Right})
	require.NoError(t, err)
	assert.Equal(t, []gridsearch.Coord{
		{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 1},
	}, gridsearch.Sorted(lit))
}

func TestEnergizedErrors(t *testing.T) {
	_, err := gridsearch.ParseContraption([]string{".x."})
	require.ErrorIs(t, err, gridsearch.ErrInvalidCell)

	g, err := gridsearch.ParseContraption([]string{"..."})
	require.NoError(t, err)
	_, err = gridsearch.Energized(g, gridsearch.State{Pos: gridsearch.Coord{Row: 3}, Facing: gridsearch.Down})
	require.ErrorIs(t, err, gridsearch.ErrOutOfBounds)
}
