package gridsearch

import (
	"fmt"

	"tailscale.com/util/deephash"
)

// Coord addresses a grid cell by row and column. A Coord produced by the
// grid is never negative: Step and Neighbors4 check bounds before moving.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns the taxicab distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return AbsDiff(c.Row, o.Row) + AbsDiff(c.Col, o.Col)
}

// Less orders coordinates row-major.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Compare orders coordinates row-major, for use with slices.SortFunc.
func (c Coord) Compare(o Coord) int {
	switch {
	case c.Less(o):
		return -1
	case o.Less(c):
		return 1
	}
	return 0
}

// Grid is an immutable rectangular array of cells. Every row has the same
// length and there is at least one row and one column.
type Grid[T any] struct {
	cells [][]T
}

// NewGrid builds a Grid from rows. The input is deep-copied so later
// changes to rows do not leak into the grid.
func NewGrid[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	cells := make([][]T, len(rows))
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		cells[r] = append([]T(nil), row...)
	}
	return &Grid[T]{cells: cells}, nil
}

// MakeGrid returns a rows×cols grid where every cell holds fill.
func MakeGrid[T any](rows, cols int, fill T) (*Grid[T], error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]T, rows)
	for r := range cells {
		cells[r] = make([]T, cols)
		for c := range cells[r] {
			cells[r][c] = fill
		}
	}
	return &Grid[T]{cells: cells}, nil
}

// ParseGrid turns text lines into a grid, one cell per rune. Errors from
// cell are reported with the offending position.
func ParseGrid[T any](lines []string, cell func(rune) (T, error)) (*Grid[T], error) {
	rows := make([][]T, 0, len(lines))
	for r, line := range lines {
		row := make([]T, 0, len(line))
		for c, ch := range []rune(line) {
			v, err := cell(ch)
			if err != nil {
				return nil, fmt.Errorf("at %v: %w", Coord{r, c}, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return NewGrid(rows)
}

// ParseRunes parses lines into a grid of runes.
func ParseRunes(lines []string) (*Grid[rune], error) {
	return ParseGrid(lines, func(r rune) (rune, error) { return r, nil })
}

// ParseDigits parses lines of decimal digits into a grid of small costs.
func ParseDigits(lines []string) (*Grid[uint8], error) {
	return ParseGrid(lines, func(r rune) (uint8, error) {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a digit", ErrInvalidCell, r)
		}
		return uint8(r - '0'), nil
	})
}

// MapGrid returns a new grid holding f applied to every cell of g.
func MapGrid[T, U any](g *Grid[T], f func(Coord, T) U) *Grid[U] {
	cells := make([][]U, len(g.cells))
	for r, row := range g.cells {
		cells[r] = make([]U, len(row))
		for c, v := range row {
			cells[r][c] = f(Coord{r, c}, v)
		}
	}
	return &Grid[U]{cells: cells}
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return len(g.cells) }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return len(g.cells[0]) }

// Size returns the number of rows and columns.
func (g *Grid[T]) Size() (rows, cols int) {
	return g.Rows(), g.Cols()
}

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return g.Rows() * g.Cols() }

// InBounds reports whether c addresses a cell of g.
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < g.Rows() && c.Col < g.Cols()
}

// Get returns the cell at c, or ErrOutOfBounds.
func (g *Grid[T]) Get(c Coord) (T, error) {
	if !g.InBounds(c) {
		var zero T
		return zero, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Rows(), g.Cols())
	}
	return g.cells[c.Row][c.Col], nil
}

// At returns the cell at c. It panics if c is out of bounds.
func (g *Grid[T]) At(c Coord) T {
	v, err := g.Get(c)
	if err != nil {
		panic(err)
	}
	return v
}

// AtOk returns the cell at c and whether c was in bounds.
func (g *Grid[T]) AtOk(c Coord) (T, bool) {
	if !g.InBounds(c) {
		var zero T
		return zero, false
	}
	return g.cells[c.Row][c.Col], true
}

// Step moves one cell from c in direction d. It reports false, without
// computing the neighbor, when the move would leave the grid.
func (g *Grid[T]) Step(c Coord, d Direction) (Coord, bool) {
	switch d {
	case Up:
		if c.Row > 0 {
			return Coord{c.Row - 1, c.Col}, true
		}
	case Right:
		if c.Col < g.Cols()-1 {
			return Coord{c.Row, c.Col + 1}, true
		}
	case Down:
		if c.Row < g.Rows()-1 {
			return Coord{c.Row + 1, c.Col}, true
		}
	case Left:
		if c.Col > 0 {
			return Coord{c.Row, c.Col - 1}, true
		}
	}
	return Coord{}, false
}

// Neighbors4 returns the in-bounds axis-aligned neighbors of c in
// Up, Right, Down, Left order. There is no wraparound.
func (g *Grid[T]) Neighbors4(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range Directions {
		if n, ok := g.Step(c, d); ok {
			out = append(out, n)
		}
	}
	return out
}

// Each calls f for every cell in row-major order.
func (g *Grid[T]) Each(f func(Coord, T)) {
	for r, row := range g.cells {
		for c, v := range row {
			f(Coord{r, c}, v)
		}
	}
}

// Find returns the first cell, in row-major order, matching pred.
func (g *Grid[T]) Find(pred func(T) bool) (Coord, bool) {
	for r, row := range g.cells {
		for c, v := range row {
			if pred(v) {
				return Coord{r, c}, true
			}
		}
	}
	return Coord{}, false
}

// FindAll returns every cell matching pred in row-major order.
func (g *Grid[T]) FindAll(pred func(T) bool) []Coord {
	var out []Coord
	g.Each(func(c Coord, v T) {
		if pred(v) {
			out = append(out, c)
		}
	})
	return out
}

// Border returns every cell on the outer edge of g exactly once, in
// row-major order.
func (g *Grid[T]) Border() []Coord {
	rows, cols := g.Size()
	var out []Coord
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r == 0 || c == 0 || r == rows-1 || c == cols-1 {
				out = append(out, Coord{r, c})
			}
		}
	}
	return out
}

// EdgeEntries returns a state for every way of entering the grid from
// outside: each border cell paired with the inward heading. Corner cells
// appear twice.
func (g *Grid[T]) EdgeEntries() []State {
	rows, cols := g.Size()
	var out []State
	for c := 0; c < cols; c++ {
		out = append(out,
			State{Pos: Coord{0, c}, Facing: Down},
			State{Pos: Coord{rows - 1, c}, Facing: Up},
		)
	}
	for r := 0; r < rows; r++ {
		out = append(out,
			State{Pos: Coord{r, 0}, Facing: Right},
			State{Pos: Coord{r, cols - 1}, Facing: Left},
		)
	}
	return out
}

// Transpose returns g with rows and columns swapped.
func (g *Grid[T]) Transpose() *Grid[T] {
	rows, cols := g.Size()
	cells := make([][]T, cols)
	for c := range cells {
		cells[c] = make([]T, rows)
		for r := 0; r < rows; r++ {
			cells[c][r] = g.cells[r][c]
		}
	}
	return &Grid[T]{cells: cells}
}

// Clone returns a mutable deep copy of the cells. The grid itself is
// unaffected by writes to the copy.
func (g *Grid[T]) Clone() [][]T {
	out := make([][]T, len(g.cells))
	for r, row := range g.cells {
		out[r] = append([]T(nil), row...)
	}
	return out
}

// Hash returns a fingerprint of the grid contents.
func (g *Grid[T]) Hash() deephash.Sum {
	return deephash.Hash(&g.cells)
}
