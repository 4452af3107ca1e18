package gridsearch

import "fmt"

// ParseGalaxies parses an image of '.' space and '#' galaxies.
func ParseGalaxies(lines []string) (*Grid[rune], error) {
	return ParseGrid(lines, func(r rune) (rune, error) {
		if r != '.' && r != '#' {
			return 0, fmt.Errorf("%w: %q is not space or galaxy", ErrInvalidCell, r)
		}
		return r, nil
	})
}

// Expansion holds the cost of crossing each row and each column of an
// image after cosmic expansion.
type Expansion struct {
	Rows, Cols []Cost
}

// ExpansionWeights charges factor for crossing a row or column that holds
// no galaxy, and one otherwise.
func ExpansionWeights(g *Grid[rune], factor Cost) Expansion {
	rows, cols := g.Size()
	e := Expansion{Rows: make([]Cost, rows), Cols: make([]Cost, cols)}
	for i := range e.Rows {
		e.Rows[i] = factor
	}
	for i := range e.Cols {
		e.Cols[i] = factor
	}
	for _, c := range g.FindAll(func(r rune) bool { return r == '#' }) {
		e.Rows[c.Row] = 1
		e.Cols[c.Col] = 1
	}
	return e
}

// Neighbors returns the weighted transition function over the image. A
// vertical step costs the weight of the row entered and a horizontal
// step the weight of the column entered.
func (e Expansion) Neighbors(g *Grid[rune]) func(Coord) []Edge[Coord] {
	return func(c Coord) []Edge[Coord] {
		out := make([]Edge[Coord], 0, 4)
		for _, d := range Directions {
			n, ok := g.Step(c, d)
			if !ok {
				continue
			}
			w := e.Cols[n.Col]
			if d == Up || d == Down {
				w = e.Rows[n.Row]
			}
			out = append(out, Edge[Coord]{To: n, Cost: w})
		}
		return out
	}
}

// GalaxyDistanceSum returns the sum of shortest distances between every
// pair of galaxies after expanding empty rows and columns by factor. One
// search runs per galaxy, spread over up to workers goroutines.
func GalaxyDistanceSum(g *Grid[rune], factor Cost, workers int) (Cost, error) {
	if factor < 1 {
		return 0, fmt.Errorf("%w: expansion factor %d", ErrOptionViolation, factor)
	}
	galaxies := g.FindAll(func(r rune) bool { return r == '#' })
	next := ExpansionWeights(g, factor).Neighbors(g)
	idx := make([]int, len(galaxies))
	for i := range idx {
		idx[i] = i
	}
	return ParallelReduce(idx, workers,
		func(i int) (Cost, error) {
			res, err := Dijkstra([]Coord{galaxies[i]}, next)
			if err != nil {
				return 0, err
			}
			var sum Cost
			for _, other := range galaxies[i+1:] {
				d, err := res.Distance(other)
				if err != nil {
					return 0, err
				}
				sum += d
			}
			return sum, nil
		},
		func(acc, n Cost) Cost { return acc + n },
		0,
	)
}
