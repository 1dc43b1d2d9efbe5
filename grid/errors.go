package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns, or a
	// requested size has a non-positive component.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)
