package gridsearch

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Pipe is a tile of a pipe maze.
type Pipe rune

const (
	Ground     Pipe = '.'
	Vertical   Pipe = '|'
	Horizontal Pipe = '-'
	NorthEast  Pipe = 'L'
	NorthWest  Pipe = 'J'
	SouthWest  Pipe = '7'
	SouthEast  Pipe = 'F'
	// StartPipe marks the animal's tile. Its real shape is hidden and is
	// recovered by StartShape.
	StartPipe Pipe = 'S'
)

var pipeLinks = map[Pipe]Links{
	Ground:     0,
	Vertical:   LinksOf(Up, Down),
	Horizontal: LinksOf(Left, Right),
	NorthEast:  LinksOf(Up, Right),
	NorthWest:  LinksOf(Up, Left),
	SouthWest:  LinksOf(Down, Left),
	SouthEast:  LinksOf(Down, Right),
	StartPipe:  LinksOf(Up, Right, Down, Left),
}

// ParsePipe decodes one pipe tile.
func ParsePipe(r rune) (Pipe, error) {
	p := Pipe(r)
	if _, ok := pipeLinks[p]; !ok {
		return 0, fmt.Errorf("%w: %q is not a pipe", ErrInvalidCell, r)
	}
	return p, nil
}

// ParsePipes parses a pipe maze.
func ParsePipes(lines []string) (*Grid[Pipe], error) {
	return ParseGrid(lines, ParsePipe)
}

// Links returns the directions p opens toward. The start tile opens in
// every direction; the mutual check in Connected narrows it down.
func (p Pipe) Links() Links {
	return pipeLinks[p]
}

func (p Pipe) String() string {
	return string(p)
}

// pipeFor returns the tile shape with exactly the links l.
func pipeFor(l Links) (Pipe, bool) {
	for p, pl := range pipeLinks {
		if p != StartPipe && p != Ground && pl == l {
			return p, true
		}
	}
	return 0, false
}

// CanConnect reports whether the tile at from opens toward the adjacent
// cell to. A cell never connects to itself.
func CanConnect(g *Grid[Pipe], from, to Coord) bool {
	if from == to {
		return false
	}
	for _, d := range Directions {
		n, ok := g.Step(from, d)
		if ok && n == to {
			return g.At(from).Links().Has(d)
		}
	}
	return false
}

// Connected reports whether a and b are joined: each tile must open toward
// the other.
func Connected(g *Grid[Pipe], a, b Coord) bool {
	return CanConnect(g, a, b) && CanConnect(g, b, a)
}

// FindStart returns the position of the start tile.
func FindStart(g *Grid[Pipe]) (Coord, error) {
	s, ok := g.Find(func(p Pipe) bool { return p == StartPipe })
	if !ok {
		return Coord{}, fmt.Errorf("%w: no start tile", ErrMalformedInput)
	}
	return s, nil
}

// LoopDistances runs a BFS along the loop through the start tile. Every
// loop cell is finalized with its distance from the start.
func LoopDistances(g *Grid[Pipe]) (*Result[Coord], error) {
	start, err := FindStart(g)
	if err != nil {
		return nil, err
	}
	return BFS([]Coord{start}, g.Neighbors4,
		WithAccept(func(a, b Coord) bool { return Connected(g, a, b) }),
	)
}

// Furthest returns the distance from the start to the loop cell farthest
// from it.
func Furthest(g *Grid[Pipe]) (Cost, error) {
	res, err := LoopDistances(g)
	if err != nil {
		return 0, err
	}
	_, d, _ := res.Max()
	return d, nil
}

// StartShape infers the tile hidden under the start from the neighbors
// that connect back to it.
func StartShape(g *Grid[Pipe], start Coord) (Pipe, error) {
	var l Links
	for _, d := range Directions {
		if n, ok := g.Step(start, d); ok && Connected(g, start, n) {
			l |= d.Link()
		}
	}
	p, ok := pipeFor(l)
	if !ok {
		return 0, fmt.Errorf("%w: start at %v connects %d neighbors", ErrMalformedInput, start, l.Count())
	}
	return p, nil
}

// Loop returns the cells on the loop through the start tile, with the
// start replaced by its inferred shape.
func Loop(g *Grid[Pipe]) (*Grid[Pipe], mapset.Set[Coord], error) {
	res, err := LoopDistances(g)
	if err != nil {
		return nil, mapset.Set[Coord]{}, err
	}
	start := res.Order[0]
	shape, err := StartShape(g, start)
	if err != nil {
		return nil, mapset.Set[Coord]{}, err
	}
	loop := mapset.New[Coord]()
	for c := range res.Dist {
		loop.Put(c)
	}
	clean := MapGrid(g, func(c Coord, p Pipe) Pipe {
		switch {
		case c == start:
			return shape
		case loop.Has(c):
			return p
		}
		return Ground
	})
	return clean, loop, nil
}

// EnclosedByLoop classifies every tile not on the loop as inside or
// outside it. Junk pipes off the loop count as open tiles. Tiles squeezed
// between two loop pipes with no ground between them are still outside.
func EnclosedByLoop(g *Grid[Pipe]) (*Regions, error) {
	clean, _, err := Loop(g)
	if err != nil {
		return nil, err
	}
	return ClassifySupersampled(clean, Pipe.Links)
}
