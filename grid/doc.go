// Package grid provides a dense, immutable 2D container over any cell type
// and the connected-region analysis built on top of it.
//
// What:
//
//   - Grid[T] stores Width×Height cells in one row-major buffer
//     (index = y*Width + x) addressed by geometry.Point.
//   - Parse builds a Grid[rune] from newline-separated text; FromRows and New
//     build grids from slices or a fill value.
//   - Get / GetWithIndex never fault: out-of-range points yield ok == false.
//   - Map produces a new grid of a different cell type, position for position.
//   - All / FindAll are lazy, restartable row-major iterators.
//   - FloodFill extracts a 4-connected Region under a membership predicate,
//     recording for every cell which neighbours also satisfy the predicate.
//   - Regions / Label partition a grid into maximal same-valued regions.
//   - Region.Perimeter counts exposed unit edges; Region.Sides merges
//     colinear edges facing the same way into straight sides.
//
// Why:
//
//   - Neighbour flags depend only on the predicate, never on traversal order,
//     so perimeter and side metrics are purely local per cell.
//   - Flood fill uses an explicit stack, so region size is bounded only by
//     memory, not by goroutine stack depth.
//
// Complexity:
//
//   - Get, GetWithIndex, Index, Coordinate: O(1).
//   - Map, All, FindAll, New, Parse: O(W×H).
//   - FloodFill: O(W×H) time and memory (visited flags).
//   - Regions, Label: O(W×H) overall; claimed cells double as the visited set.
//   - Region.Perimeter: O(A); Region.Sides: O(A) expected (hash sets), A = area.
//
// Options (Parse):
//
//   - WithPadding(r): pad short rows with r instead of rejecting them.
//
// Errors:
//
//   - ErrEmptyGrid: no rows, no columns, or a non-positive size.
//   - ErrNonRectangular: rows of differing lengths (without WithPadding).
//
// A Grid is never mutated after construction and is safe for concurrent
// readers; every FloodFill call owns its own stack and visited flags.
package grid
