package gridsearch_test

import (
	"testing"

	"github.com/maisem/gridsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isHash(r rune) bool { return r == '#' }

func TestClassify(t *testing.T) {
	g := runes(t, `
.....
.###.
.#.#.
.###.
.....
`)
	regions, err := gridsearch.Classify(g, isHash)
	require.NoError(t, err)
	assert.Equal(t, []gridsearch.Coord{{Row: 2, Col: 2}}, gridsearch.Sorted(regions.Enclosed))
	assert.Equal(t, 16, regions.Outside.Size())
	assert.False(t, regions.Outside.Has(gridsearch.Coord{Row: 1, Col: 1}))
}

func TestClassifyPartitions(t *testing.T) {
	g := runes(t, `
#########
#..#....#
#..#.##.#
####.#..#
#....####
#########
`)
	regions, err := gridsearch.Classify(g, isHash)
	require.NoError(t, err)
	// The border is all wall so nothing is outside.
	assert.Zero(t, regions.Outside.Size())
	open := g.FindAll(func(r rune) bool { return r != '#' })
	assert.Equal(t, open, gridsearch.Sorted(regions.Enclosed))

	pockets := regions.Pockets()
	require.Len(t, pockets, 2)
	assert.Equal(t, []gridsearch.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}, pockets[0])
	assert.Len(t, pockets[1], len(open)-4)
}

func TestClassifyEdgeCases(t *testing.T) {
	_, err := gridsearch.Classify(runes(t, "."), nil)
	require.ErrorIs(t, err, gridsearch.ErrOptionViolation)

	walls, err := gridsearch.Classify(runes(t, "##\n##"), isHash)
	require.NoError(t, err)
	assert.Zero(t, walls.Outside.Size())
	assert.Zero(t, walls.Enclosed.Size())

	one, err := gridsearch.Classify(runes(t, "."), isHash)
	require.NoError(t, err)
	assert.True(t, one.Outside.Has(gridsearch.Coord{}))
}

func TestSupersample(t *testing.T) {
	g, err := gridsearch.ParsePipes([]string{"-."})
	require.NoError(t, err)
	big := gridsearch.Supersample(g, gridsearch.Pipe.Links)
	rows, cols := big.Size()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 6, cols)
	want := gridsearch.Render(big, func(b bool) rune {
		if b {
			return '#'
		}
		return '.'
	}, nil)
	assert.Equal(t, "......\n###...\n......\n", want)
}

// squeeze has tiles between two parallel pipes that a plain flood fill
// wrongly treats as enclosed.
const squeeze = `
..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
`

func TestClassifySupersampledSqueeze(t *testing.T) {
	g, err := gridsearch.ParsePipes(lines(squeeze))
	require.NoError(t, err)
	clean, loop, err := gridsearch.Loop(g)
	require.NoError(t, err)
	assert.Equal(t, gridsearch.SouthEast, clean.At(gridsearch.Coord{Row: 1, Col: 1}))

	naive, err := gridsearch.Classify(clean, func(p gridsearch.Pipe) bool { return p != gridsearch.Ground })
	require.NoError(t, err)
	assert.Equal(t, 12, naive.Enclosed.Size())

	fine, err := gridsearch.ClassifySupersampled(clean, gridsearch.Pipe.Links)
	require.NoError(t, err)
	assert.Equal(t, []gridsearch.Coord{
		{Row: 6, Col: 2}, {Row: 6, Col: 3}, {Row: 6, Col: 6}, {Row: 6, Col: 7},
	}, gridsearch.Sorted(fine.Enclosed))
	assert.Equal(t, [][]gridsearch.Coord{
		{{Row: 6, Col: 2}, {Row: 6, Col: 3}},
		{{Row: 6, Col: 6}, {Row: 6, Col: 7}},
	}, fine.Pockets())

	// Every non-loop cell lands in exactly one region.
	assert.Equal(t, clean.Len()-loop.Size(), fine.Enclosed.Size()+fine.Outside.Size())
}
