package gridsearch

import "fmt"

// RunLimits bounds the length of every straight run in a move-then-turn
// path: at least Min cells before a turn, never more than Max.
type RunLimits struct {
	Min, Max int
}

// Validate reports ErrInvalidRunLimits unless 1 <= Min <= Max.
func (l RunLimits) Validate() error {
	if l.Min < 1 || l.Max < l.Min {
		return fmt.Errorf("%w: min=%d max=%d", ErrInvalidRunLimits, l.Min, l.Max)
	}
	return nil
}

// MoveThenTurn returns a neighbor function where one transition is a whole
// straight run. From (pos, facing) it turns to each perpendicular heading
// and advances 1..Max cells, offering every cell at step Min or later with
// the cost of the cells entered so far. States are keyed by position and
// facing only; Run is left at zero.
//
// A state facing NoDirection may leave in any of the four directions.
func MoveThenTurn[T any](g *Grid[T], weight func(T) Cost, limits RunLimits) (func(State) []Edge[State], error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	return func(s State) []Edge[State] {
		var out []Edge[State]
		for _, d := range s.Facing.Perpendicular() {
			cur := s.Pos
			var acc Cost
			for step := 1; step <= limits.Max; step++ {
				next, ok := g.Step(cur, d)
				if !ok {
					break
				}
				cur = next
				acc += weight(g.At(cur))
				if step >= limits.Min {
					out = append(out, Edge[State]{
						To:   State{Pos: cur, Facing: d},
						Cost: acc,
					})
				}
			}
		}
		return out
	}, nil
}

// StepwiseRuns returns a neighbor function that moves one cell at a time
// and carries the current run length in State.Run. It may continue
// straight while Run < Max and may turn once Run >= Min. It never
// reverses.
//
// It explores far more states than MoveThenTurn and exists to cross-check
// it.
func StepwiseRuns[T any](g *Grid[T], weight func(T) Cost, limits RunLimits) (func(State) []Edge[State], error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	return func(s State) []Edge[State] {
		var out []Edge[State]
		for _, d := range Directions {
			run := 1
			switch {
			case s.Facing == NoDirection:
			case d == s.Facing.Reverse():
				continue
			case d == s.Facing:
				if s.Run >= limits.Max {
					continue
				}
				run = s.Run + 1
			default:
				if s.Run < limits.Min {
					continue
				}
			}
			next, ok := g.Step(s.Pos, d)
			if !ok {
				continue
			}
			out = append(out, Edge[State]{
				To:   State{Pos: next, Facing: d, Run: run},
				Cost: weight(g.At(next)),
			})
		}
		return out
	}, nil
}

// MinRunCost returns the cheapest move-then-turn path from start to goal.
// The cost of a path is the sum of the weights of every cell entered; the
// start cell is free. The goal may be reached facing any direction.
//
// The returned path lists one state per run end, start first. ExpandRuns
// recovers every cell crossed.
func MinRunCost[T any](g *Grid[T], start, goal Coord, weight func(T) Cost, limits RunLimits) (Cost, []State, error) {
	next, err := MoveThenTurn(g, weight, limits)
	if err != nil {
		return 0, nil, err
	}
	return runSearch(g, start, goal, next, func(s State) bool { return s.Pos == goal })
}

// MinRunCostStepwise is MinRunCost computed with StepwiseRuns. The goal
// only counts once the final run has reached limits.Min.
func MinRunCostStepwise[T any](g *Grid[T], start, goal Coord, weight func(T) Cost, limits RunLimits) (Cost, []State, error) {
	next, err := StepwiseRuns(g, weight, limits)
	if err != nil {
		return 0, nil, err
	}
	return runSearch(g, start, goal, next, func(s State) bool {
		return s.Pos == goal && (s.Pos == start || s.Run >= limits.Min)
	})
}

func runSearch[T any](g *Grid[T], start, goal Coord, next func(State) []Edge[State], isGoal func(State) bool) (Cost, []State, error) {
	for _, c := range []Coord{start, goal} {
		if !g.InBounds(c) {
			return 0, nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Rows(), g.Cols())
		}
	}
	res, err := Dijkstra([]State{At(start)}, next,
		WithPredecessors[State](),
		WithStop(func(s State, _ Cost) bool { return isGoal(s) }),
	)
	if err != nil {
		return 0, nil, err
	}
	if !res.Stopped {
		return 0, nil, fmt.Errorf("%w: %v from %v", ErrUnreachable, goal, start)
	}
	end := res.Order[len(res.Order)-1]
	path, err := res.PathTo(end)
	if err != nil {
		return 0, nil, err
	}
	return res.Dist[end], path, nil
}

// ExpandRuns lists every cell entered along path, in order, excluding the
// first state's cell. Consecutive states must lie on a straight line in
// the later state's facing.
func ExpandRuns(path []State) []Coord {
	var out []Coord
	for i := 1; i < len(path); i++ {
		dr, dc := path[i].Facing.Delta()
		if dr == 0 && dc == 0 {
			continue
		}
		cur := path[i-1].Pos
		for n := cur.Manhattan(path[i].Pos); n > 0 && cur != path[i].Pos; n-- {
			cur = Coord{cur.Row + dr, cur.Col + dc}
			out = append(out, cur)
		}
	}
	return out
}
