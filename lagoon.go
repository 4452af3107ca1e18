package gridsearch

import (
	"fmt"
	"strconv"
	"strings"
)

// DigStep is one instruction of a dig plan.
type DigStep struct {
	Dir   Direction
	Len   int
	Color string // "#rrggbb"
}

// ParseDigPlan parses lines like "R 6 (#70c710)". With useHex the
// direction and length are decoded from the colour instead: five hex
// digits of length followed by one direction digit.
func ParseDigPlan(lines []string, useHex bool) ([]DigStep, error) {
	var plan []DigStep
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		st, err := parseDigStep(line, useHex)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		plan = append(plan, st)
	}
	return plan, nil
}

func parseDigStep(line string, useHex bool) (DigStep, error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return DigStep{}, fmt.Errorf("%w: %q", ErrMalformedInput, line)
	}
	if len(f[0]) != 1 || !strings.Contains("UDLR", f[0]) {
		return DigStep{}, fmt.Errorf("%w: bad direction in %q", ErrMalformedInput, line)
	}
	d, err := ParseDirection(rune(f[0][0]))
	if err != nil {
		return DigStep{}, err
	}
	n, err := strconv.Atoi(f[1])
	if err != nil || n < 1 {
		return DigStep{}, fmt.Errorf("%w: bad length in %q", ErrMalformedInput, line)
	}
	color, ok := strings.CutPrefix(f[2], "(#")
	color, ok2 := strings.CutSuffix(color, ")")
	if !ok || !ok2 || len(color) != 6 {
		return DigStep{}, fmt.Errorf("%w: bad colour in %q", ErrMalformedInput, line)
	}
	if _, err := strconv.ParseUint(color, 16, 32); err != nil {
		return DigStep{}, fmt.Errorf("%w: bad colour in %q", ErrMalformedInput, line)
	}
	st := DigStep{Dir: d, Len: n, Color: "#" + color}
	if useHex {
		if color[5] < '0' || color[5] > '3' {
			return DigStep{}, fmt.Errorf("%w: bad hex direction in %q", ErrMalformedInput, line)
		}
		hd, err := ParseDirection(rune(color[5]))
		if err != nil {
			return DigStep{}, err
		}
		hn, _ := strconv.ParseUint(color[:5], 16, 32)
		if hn == 0 {
			return DigStep{}, fmt.Errorf("%w: zero hex length in %q", ErrMalformedInput, line)
		}
		st.Dir, st.Len = hd, int(hn)
	}
	return st, nil
}

// maxTrenchCells caps the grid DigTrench will allocate.
const maxTrenchCells = 1 << 24

// DigTrench traces plan from the origin and returns a grid with the
// trench cells set, surrounded by a one-cell margin of undug ground.
func DigTrench(plan []DigStep) (*Grid[bool], error) {
	var (
		cur  Coord
		cell = []Coord{cur}
		lo   = cur
		hi   = cur
	)
	for _, st := range plan {
		dr, dc := st.Dir.Delta()
		for i := 0; i < st.Len; i++ {
			cur = Coord{cur.Row + dr, cur.Col + dc}
			cell = append(cell, cur)
			lo = Coord{Min(lo.Row, cur.Row), Min(lo.Col, cur.Col)}
			hi = Coord{Max(hi.Row, cur.Row), Max(hi.Col, cur.Col)}
			if len(cell) > maxTrenchCells {
				return nil, fmt.Errorf("%w: trench longer than %d cells", ErrOutOfBounds, maxTrenchCells)
			}
		}
	}
	rows, cols := hi.Row-lo.Row+3, hi.Col-lo.Col+3
	if rows*cols > maxTrenchCells {
		return nil, fmt.Errorf("%w: trench spans %dx%d cells", ErrOutOfBounds, rows, cols)
	}
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
	}
	for _, c := range cell {
		cells[c.Row-lo.Row+1][c.Col-lo.Col+1] = true
	}
	return NewGrid(cells)
}

// LagoonVolume returns the number of cubic metres the plan digs out: the
// trench itself plus everything it encloses.
func LagoonVolume(plan []DigStep) (int, error) {
	g, err := DigTrench(plan)
	if err != nil {
		return 0, err
	}
	regions, err := Classify(g, func(dug bool) bool { return dug })
	if err != nil {
		return 0, err
	}
	return len(g.FindAll(func(dug bool) bool { return dug })) + regions.Enclosed.Size(), nil
}
