package gridsearch

import "fmt"

// ParseGarden parses a garden map of '.' plots, '#' rocks and one 'S'
// start.
func ParseGarden(lines []string) (*Grid[rune], error) {
	return ParseGrid(lines, func(r rune) (rune, error) {
		switch r {
		case '.', '#', 'S':
			return r, nil
		}
		return 0, fmt.Errorf("%w: %q is not a garden tile", ErrInvalidCell, r)
	})
}

// ReachableInSteps counts the plots the gardener can stand on after
// exactly steps moves from start. A plot first reached in d moves is
// reachable in steps moves iff d <= steps and d has the same parity, since
// the gardener can always step back and forth.
func ReachableInSteps(g *Grid[rune], start Coord, steps int) (int, error) {
	if !g.InBounds(start) {
		return 0, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	res, err := BFS([]Coord{start}, func(c Coord) []Coord {
		var out []Coord
		for _, n := range g.Neighbors4(c) {
			if g.At(n) != '#' {
				out = append(out, n)
			}
		}
		return out
	}, WithMaxDepth[Coord](steps))
	if err != nil {
		return 0, err
	}
	n := 0
	for _, d := range res.Dist {
		if d%2 == Cost(steps)%2 {
			n++
		}
	}
	return n, nil
}
