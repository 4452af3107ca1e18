package gridsearch

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Regions splits the open cells of a grid into those connected to the
// border and those cut off from it. Wall cells are in neither set.
type Regions struct {
	Outside  mapset.Set[Coord]
	Enclosed mapset.Set[Coord]
}

// Sorted returns the members of s in row-major order.
func Sorted(s mapset.Set[Coord]) []Coord {
	out := make([]Coord, 0, s.Size())
	s.Each(func(c Coord) { out = append(out, c) })
	slices.SortFunc(out, Coord.Compare)
	return out
}

// Pockets groups the enclosed cells into 4-connected components. Each
// component is sorted row-major and components are ordered by their first
// cell.
func (r *Regions) Pockets() [][]Coord {
	seen := mapset.New[Coord]()
	var out [][]Coord
	for _, c := range Sorted(r.Enclosed) {
		if seen.Has(c) {
			continue
		}
		var (
			st   Stack[Coord]
			comp []Coord
		)
		seen.Put(c)
		st.Push(c)
		for st.Len() > 0 {
			cur, _ := st.Pop()
			comp = append(comp, cur)
			for _, d := range Directions {
				dr, dc := d.Delta()
				n := Coord{cur.Row + dr, cur.Col + dc}
				if r.Enclosed.Has(n) && !seen.Has(n) {
					seen.Put(n)
					st.Push(n)
				}
			}
		}
		slices.SortFunc(comp, Coord.Compare)
		out = append(out, comp)
	}
	return out
}

// Classify flood-fills g from every border cell that is not a wall, moving
// in four directions. Open cells the fill reaches are Outside; the rest
// are Enclosed.
func Classify[T any](g *Grid[T], isWall func(T) bool) (*Regions, error) {
	if isWall == nil {
		return nil, fmt.Errorf("%w: nil wall predicate", ErrOptionViolation)
	}
	walls := MapGrid(g, func(_ Coord, v T) bool { return isWall(v) })
	open := func(c Coord) bool { return !walls.At(c) }

	regions := &Regions{
		Outside:  mapset.New[Coord](),
		Enclosed: mapset.New[Coord](),
	}
	var seeds []Coord
	for _, c := range walls.Border() {
		if open(c) {
			seeds = append(seeds, c)
		}
	}
	if len(seeds) > 0 {
		res, err := BFS(seeds, func(c Coord) []Coord {
			var out []Coord
			for _, n := range walls.Neighbors4(c) {
				if open(n) {
					out = append(out, n)
				}
			}
			return out
		})
		if err != nil {
			return nil, err
		}
		for c := range res.Dist {
			regions.Outside.Put(c)
		}
	}
	walls.Each(func(c Coord, wall bool) {
		if !wall && !regions.Outside.Has(c) {
			regions.Enclosed.Put(c)
		}
	})
	return regions, nil
}

// Supersample expands g three times in each axis. Every cell becomes a 3×3
// block of open cells; a cell with any links walls off its block centre
// and the edge midpoint toward each linked direction. Two linked cells
// therefore form an unbroken wall while the gap between two pipes that
// merely touch stays open.
func Supersample[T any](g *Grid[T], links func(T) Links) *Grid[bool] {
	rows, cols := g.Size()
	cells := make([][]bool, rows*3)
	for r := range cells {
		cells[r] = make([]bool, cols*3)
	}
	g.Each(func(c Coord, v T) {
		l := links(v)
		if l == 0 {
			return
		}
		cr, cc := c.Row*3+1, c.Col*3+1
		cells[cr][cc] = true
		for _, d := range Directions {
			if l.Has(d) {
				dr, dc := d.Delta()
				cells[cr+dr][cc+dc] = true
			}
		}
	})
	return &Grid[bool]{cells: cells}
}

// ClassifySupersampled classifies g on its supersampled expansion, so that
// open cells squeezed between parallel pipes are seen as connected. A cell
// of g is Outside iff the centre of its block was reached. Cells with
// links are walls and appear in neither set.
func ClassifySupersampled[T any](g *Grid[T], links func(T) Links) (*Regions, error) {
	big, err := Classify(Supersample(g, links), func(wall bool) bool { return wall })
	if err != nil {
		return nil, err
	}
	regions := &Regions{
		Outside:  mapset.New[Coord](),
		Enclosed: mapset.New[Coord](),
	}
	g.Each(func(c Coord, v T) {
		if links(v) != 0 {
			return
		}
		if big.Outside.Has(Coord{c.Row*3 + 1, c.Col*3 + 1}) {
			regions.Outside.Put(c)
		} else {
			regions.Enclosed.Put(c)
		}
	})
	return regions, nil
}
