package grid

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/lvgrid/geometry"
)

// New returns a grid of the given size with every cell set to value.
// Returns ErrEmptyGrid if either size component is not positive.
// Complexity: O(W×H) time and memory.
func New[T any](size geometry.Point, value T) (*Grid[T], error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("New: size %v: %w", size, ErrEmptyGrid)
	}
	cells := make([]T, size.Area())
	for i := range cells {
		cells[i] = value
	}

	return &Grid[T]{size: size, cells: cells}, nil
}

// FromRows builds a grid from a non-empty, rectangular 2D slice, where
// rows[y][x] becomes the cell at (x,y). The input is copied.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]T, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{size: geometry.Pt(w, h), cells: cells}, nil
}

// Parse builds a Grid[rune] from newline-separated text, one cell per rune.
// Trailing line breaks do not add rows and "\r\n" endings are accepted.
// The width is the longest row; shorter rows are rejected with
// ErrNonRectangular unless WithPadding is given.
// Complexity: O(len(text)).
func Parse(text string, opts ...Option) (*Grid[rune], error) {
	o := DefaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}

	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	rows := make([][]rune, len(lines))
	width := 0
	for y, line := range lines {
		rows[y] = []rune(strings.TrimSuffix(line, "\r"))
		width = max(width, len(rows[y]))
	}
	if width == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([]rune, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width && !o.PadRagged {
			return nil, fmt.Errorf("Parse: row %d has %d cells, want %d: %w", y, len(row), width, ErrNonRectangular)
		}
		cells = append(cells, row...)
		for x := len(row); x < width; x++ {
			cells = append(cells, o.Pad)
		}
	}

	return &Grid[rune]{size: geometry.Pt(width, len(rows)), cells: cells}, nil
}

// Map returns a new grid with f applied to every cell of g.
// The result has the same size and never shares storage with g.
// Complexity: O(W×H).
func Map[T, U any](g *Grid[T], f func(T) U) *Grid[U] {
	cells := make([]U, len(g.cells))
	for i, v := range g.cells {
		cells[i] = f(v)
	}

	return &Grid[U]{size: g.size, cells: cells}
}

// Size returns the grid dimensions as (width, height).
func (g *Grid[T]) Size() geometry.Point {
	return g.size
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.size.X
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.size.Y
}

// InBounds reports whether p addresses a cell of g.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p geometry.Point) bool {
	return p.InBounds(g.size)
}

// Get returns the cell at p. ok is false when p lies outside the grid.
// Complexity: O(1).
func (g *Grid[T]) Get(p geometry.Point) (v T, ok bool) {
	if !p.InBounds(g.size) {
		return v, false
	}

	return g.cells[g.index(p)], true
}

// GetWithIndex is Get that also echoes p back, so neighbour lookups can be
// chained without recomputing the point.
func (g *Grid[T]) GetWithIndex(p geometry.Point) (geometry.Point, T, bool) {
	v, ok := g.Get(p)

	return p, v, ok
}

// All yields every (point, cell) pair in row-major order.
// The sequence is lazy and may be ranged over any number of times.
func (g *Grid[T]) All() iter.Seq2[geometry.Point, T] {
	return func(yield func(geometry.Point, T) bool) {
		for i, v := range g.cells {
			if !yield(g.Coordinate(i), v) {
				return
			}
		}
	}
}

// FindAll yields the (point, cell) pairs whose cell satisfies pred,
// in row-major order. Nothing is materialised; breaking out of the range
// stops the scan.
func (g *Grid[T]) FindAll(pred func(T) bool) iter.Seq2[geometry.Point, T] {
	return func(yield func(geometry.Point, T) bool) {
		for i, v := range g.cells {
			if !pred(v) {
				continue
			}
			if !yield(g.Coordinate(i), v) {
				return
			}
		}
	}
}

// Index maps an in-bounds point to its row-major buffer index: y*Width + x.
// Complexity: O(1).
func (g *Grid[T]) Index(p geometry.Point) int {
	return g.index(p)
}

// Coordinate converts a row-major index back to a point.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) geometry.Point {
	return geometry.Pt(idx%g.size.X, idx/g.size.X)
}

// String renders the grid one row per line. Rune cells are written as
// characters, everything else with fmt's %v.
func (g *Grid[T]) String() string {
	var b strings.Builder
	for i, v := range g.cells {
		switch c := any(v).(type) {
		case rune:
			b.WriteRune(c)
		default:
			fmt.Fprint(&b, c)
		}
		if (i+1)%g.size.X == 0 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func (g *Grid[T]) index(p geometry.Point) int {
	return p.Y*g.size.X + p.X
}
