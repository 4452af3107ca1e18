package gridsearch

import (
	"fmt"
	"slices"
)

// PathTo walks predecessors back from goal and returns the states from a
// source to goal, source first. The search must have been run with
// WithPredecessors.
func (r *Result[S]) PathTo(goal S) ([]S, error) {
	if r.Prev == nil {
		return nil, ErrNoPredecessors
	}
	if !r.Reached(goal) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, goal)
	}
	path := []S{goal}
	for cur := goal; ; {
		p, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)
	return path, nil
}

// Positions projects a path of states onto the cells they occupy.
func Positions(path []State) []Coord {
	out := make([]Coord, len(path))
	for i, s := range path {
		out[i] = s.Pos
	}
	return out
}
