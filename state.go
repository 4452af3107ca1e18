package gridsearch

import "fmt"

// State is a search node: a position plus the auxiliary heading and run
// length that tell otherwise identical cells apart. Two states at the same
// position with a different Facing or Run are distinct nodes.
//
// Strategies that do not need the extra fields leave Facing as
// NoDirection and Run as zero. States are values; transitions build new
// ones.
type State struct {
	Pos    Coord
	Facing Direction
	Run    int
}

// At returns a state at c with no heading.
func At(c Coord) State {
	return State{Pos: c, Facing: NoDirection}
}

func (s State) String() string {
	if s.Facing == NoDirection {
		return s.Pos.String()
	}
	if s.Run == 0 {
		return fmt.Sprintf("%v%v", s.Pos, s.Facing)
	}
	return fmt.Sprintf("%v%v%d", s.Pos, s.Facing, s.Run)
}

// Advance returns the state one step ahead in s.Facing, with Run
// incremented, or false if the step leaves g.
func Advance[T any](g *Grid[T], s State) (State, bool) {
	next, ok := g.Step(s.Pos, s.Facing)
	if !ok {
		return State{}, false
	}
	return State{Pos: next, Facing: s.Facing, Run: s.Run + 1}, true
}
