// Package matrix provides a small dense float64 matrix and a linear system
// solver for it.
//
// What:
//
//   - Dense: a row-major r×c matrix stored in one flat slice, with
//     bounds-checked At/Set that return errors instead of panicking.
//   - Solve: Gaussian elimination with partial pivoting on an n×(n+1)
//     augmented matrix [A | b], followed by back-substitution.
//
// Why:
//
//   - Puzzle inputs frequently reduce to tiny exact systems (two buttons,
//     one prize); a dense solver with a pivot tolerance is enough and keeps
//     the module free of heavyweight numeric dependencies.
//
// Complexity:
//
//   - At, Set: O(1).
//   - Clone, String: O(r·c).
//   - Solve: O(n³) time, O(n²) memory (the input is cloned, never modified).
//
// Options (Solve):
//
//   - WithEpsilon(eps): pivots with |p| < eps are treated as zero
//     (default DefaultEpsilon = 1e-6).
//
// Errors:
//
//   - ErrInvalidDimensions: non-positive or ragged dimensions.
//   - ErrOutOfRange: index outside the matrix.
//   - ErrDimensionMismatch: Solve called on a matrix that is not n×(n+1).
//   - ErrSingular: no pivot of sufficient magnitude; the system has no
//     unique solution.
package matrix
