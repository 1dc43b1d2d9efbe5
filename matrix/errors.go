// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with %w) and tests
// check them via errors.Is. No function panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive or that input rows have differing lengths.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a matrix of the wrong shape for the
	// operation, e.g. Solve on anything other than n×(n+1).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when no pivot of magnitude ≥ epsilon exists
	// during elimination.
	ErrSingular = errors.New("matrix: singular matrix")
)
