package gridsearch

import "errors"

var (
	// ErrEmptyGrid is returned when a grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridsearch: grid must have at least one row and one column")
	// ErrNonRectangular is returned when grid rows have differing lengths.
	ErrNonRectangular = errors.New("gridsearch: all rows must have the same length")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("gridsearch: coordinate out of bounds")
	// ErrInvalidCell is returned by parsers for a character the cell type
	// does not recognize.
	ErrInvalidCell = errors.New("gridsearch: invalid cell character")
	// ErrMalformedInput is returned for ill-formed instruction tokens.
	ErrMalformedInput = errors.New("gridsearch: malformed input")
	// ErrUnreachable is returned when a goal is not connected to any source.
	ErrUnreachable = errors.New("gridsearch: goal unreachable")
	// ErrNoSources is returned when a search is started without sources.
	ErrNoSources = errors.New("gridsearch: search needs at least one source")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gridsearch: invalid option supplied")
	// ErrInvalidRunLimits is returned for run limits with Min < 1 or Max < Min.
	ErrInvalidRunLimits = errors.New("gridsearch: invalid run limits")
	// ErrNoPredecessors is returned by PathTo when the search did not
	// record predecessors.
	ErrNoPredecessors = errors.New("gridsearch: predecessors were not recorded")
)
