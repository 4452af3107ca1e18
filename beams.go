package gridsearch

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ParseMirror accepts the contraption tiles . / \ | and -.
func ParseMirror(r rune) (rune, error) {
	switch r {
	case '.', '/', '\\', '|', '-':
		return r, nil
	}
	return 0, fmt.Errorf("%w: %q is not a mirror tile", ErrInvalidCell, r)
}

// ParseContraption parses a mirror grid.
func ParseContraption(lines []string) (*Grid[rune], error) {
	return ParseGrid(lines, ParseMirror)
}

// bounce returns the headings a beam leaves tile with after travelling
// in d.
func bounce(tile rune, d Direction) []Direction {
	switch tile {
	case '/':
		switch d {
		case Up:
			return []Direction{Right}
		case Right:
			return []Direction{Up}
		case Down:
			return []Direction{Left}
		case Left:
			return []Direction{Down}
		}
	case '\\':
		switch d {
		case Up:
			return []Direction{Left}
		case Left:
			return []Direction{Up}
		case Down:
			return []Direction{Right}
		case Right:
			return []Direction{Down}
		}
	case '|':
		if d == Left || d == Right {
			return []Direction{Up, Down}
		}
	case '-':
		if d == Up || d == Down {
			return []Direction{Left, Right}
		}
	}
	return []Direction{d}
}

// BeamNeighbors returns the transition function of a light beam. A state
// is a beam inside Pos that travelled in Facing to get there.
func BeamNeighbors(g *Grid[rune]) func(State) []State {
	return func(s State) []State {
		var out []State
		for _, d := range bounce(g.At(s.Pos), s.Facing) {
			if n, ok := g.Step(s.Pos, d); ok {
				out = append(out, State{Pos: n, Facing: d})
			}
		}
		return out
	}
}

// Energized returns the tiles a beam entering at entry passes through.
func Energized(g *Grid[rune], entry State) (mapset.Set[Coord], error) {
	if !g.InBounds(entry.Pos) {
		return mapset.Set[Coord]{}, fmt.Errorf("%w: beam entry %v", ErrOutOfBounds, entry.Pos)
	}
	res, err := BFS([]State{entry}, BeamNeighbors(g))
	if err != nil {
		return mapset.Set[Coord]{}, err
	}
	lit := mapset.New[Coord]()
	for _, s := range res.Order {
		lit.Put(s.Pos)
	}
	return lit, nil
}

// MaxEnergized tries every edge entry and returns the largest number of
// energized tiles. Entries are evaluated on up to workers goroutines.
func MaxEnergized(g *Grid[rune], workers int) (int, error) {
	return ParallelReduce(g.EdgeEntries(), workers,
		func(e State) (int, error) {
			lit, err := Energized(g, e)
			if err != nil {
				return 0, err
			}
			return lit.Size(), nil
		},
		func(best, n int) int { return Max(best, n) },
		0,
	)
}
