package gridsearch

import "fmt"

// Direction is one of the four axis-aligned headings on a grid.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left

	// NoDirection is the facing of a state that has not moved yet.
	// Its perpendicular directions are all four headings.
	NoDirection Direction = -1
)

// Directions lists the four headings in clockwise order starting Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Turn rotates d by 90 degrees, clockwise if right is true.
func (d Direction) Turn(right bool) Direction {
	switch d {
	case Up:
		if right {
			return Right
		}
		return Left
	case Right:
		if right {
			return Down
		}
		return Up
	case Down:
		if right {
			return Left
		}
		return Right
	case Left:
		if right {
			return Up
		}
		return Down
	}
	return NoDirection
}

// Left is d rotated 90 degrees counter-clockwise.
func (d Direction) Left() Direction { return d.Turn(false) }

// Right is d rotated 90 degrees clockwise.
func (d Direction) Right() Direction { return d.Turn(true) }

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	if d == NoDirection {
		return NoDirection
	}
	return (d + 2) % 4
}

// Perpendicular returns the headings a state facing d may turn into.
// A state with NoDirection may leave in any direction.
func (d Direction) Perpendicular() []Direction {
	if d == NoDirection {
		return Directions[:]
	}
	return []Direction{d.Left(), d.Right()}
}

// Delta returns the row and column offsets of a single step in d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	}
	return 0, 0
}

// Link returns the single-bit Links value for d.
func (d Direction) Link() Links {
	if d == NoDirection {
		return 0
	}
	return 1 << uint(d)
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return "·"
}

// ParseDirection decodes a heading from the letters U, R, D, L or from
// the digit encoding 0=R 1=D 2=L 3=U used by hex dig instructions.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case 'U', '3':
		return Up, nil
	case 'R', '0':
		return Right, nil
	case 'D', '1':
		return Down, nil
	case 'L', '2':
		return Left, nil
	}
	return NoDirection, fmt.Errorf("%w: unknown direction %q", ErrMalformedInput, r)
}

// Links is a set of directions a cell connects to, one bit per Direction.
type Links uint8

// LinksOf builds a Links set from ds.
func LinksOf(ds ...Direction) Links {
	var l Links
	for _, d := range ds {
		l |= d.Link()
	}
	return l
}

// Has reports whether d is in l.
func (l Links) Has(d Direction) bool {
	return d != NoDirection && l&d.Link() != 0
}

// Count returns the number of directions in l.
func (l Links) Count() int {
	n := 0
	for _, d := range Directions {
		if l.Has(d) {
			n++
		}
	}
	return n
}
