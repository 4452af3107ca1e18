package gridsearch_test

import (
	"strings"
	"testing"

	"github.com/maisem/gridsearch"
	"github.com/stretchr/testify/require"
)

func lines(s string) []string {
	return strings.Split(strings.Trim(s, "\n"), "\n")
}

func digits(t *testing.T, s string) *gridsearch.Grid[uint8] {
	t.Helper()
	g, err := gridsearch.ParseDigits(lines(s))
	require.NoError(t, err)
	return g
}

func runes(t *testing.T, s string) *gridsearch.Grid[rune] {
	t.Helper()
	g, err := gridsearch.ParseRunes(lines(s))
	require.NoError(t, err)
	return g
}

func weight(v uint8) gridsearch.Cost { return gridsearch.Cost(v) }

const crucibleSample = `
2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

const crucibleUnfair = `
111111111111
999999999991
999999999991
999999999991
999999999991
`

const galaxySample = `
...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
`

const beamSample = `
.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`

const gardenSample = `
...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........
`

const digSample = `
R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f2)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
`
