package matrix

import (
	"fmt"
	"math"
)

// Solve solves the linear system encoded by the n×(n+1) augmented matrix
// aug = [A | b] and returns x with A·x = b.
//
// Behavior:
//  1. Validate shape: Cols must equal Rows+1, else ErrDimensionMismatch.
//  2. Forward elimination with partial pivoting: for each column k, the row
//     at or below k with the largest |value| in that column becomes the
//     pivot row; if that magnitude is below Epsilon, return ErrSingular.
//  3. Back-substitution from the last row upward.
//
// aug itself is never modified.
// Time Complexity: O(n³); Memory: O(n²) for the working copy.
func Solve(aug *Dense, opts ...Option) ([]float64, error) {
	if aug == nil {
		return nil, fmt.Errorf("Solve: nil matrix: %w", ErrInvalidDimensions)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1: Validate input is n×(n+1)
	n := aug.Rows()
	if aug.Cols() != n+1 {
		return nil, fmt.Errorf("Solve: %dx%d is not an augmented square system: %w", n, aug.Cols(), ErrDimensionMismatch)
	}
	m := aug.Clone() // work on a copy
	c := m.c

	// Stage 2: Forward elimination
	var (
		k, i, j  int     // loop indices
		pivotRow int     // row holding the largest candidate pivot
		best     float64 // its absolute value
		factor   float64 // multiplier eliminating m[i][k]
	)
	for k = 0; k < n; k++ {
		pivotRow, best = k, math.Abs(m.data[k*c+k])
		for i = k + 1; i < n; i++ { // scan column k below the diagonal
			if v := math.Abs(m.data[i*c+k]); v > best {
				pivotRow, best = i, v
			}
		}
		if best < o.Epsilon {
			return nil, fmt.Errorf("Solve: column %d: %w", k, ErrSingular)
		}
		m.swapRows(k, pivotRow) // bring pivot onto the diagonal

		pivot := m.data[k*c+k]
		for i = k + 1; i < n; i++ {
			factor = m.data[i*c+k] / pivot
			for j = k + 1; j < c; j++ {
				m.data[i*c+j] -= factor * m.data[k*c+j]
			}
			m.data[i*c+k] = 0 // eliminated exactly
		}
	}

	// Stage 3: Back-substitution
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum := 0.0
		for j = i + 1; j < n; j++ {
			sum += m.data[i*c+j] * x[j]
		}
		x[i] = (m.data[i*c+n] - sum) / m.data[i*c+i]
	}

	return x, nil
}
