package grid

import "github.com/katalvlaran/lvgrid/geometry"

// Grid is a dense Width×Height container of cells of type T.
// cells holds Width*Height values in row-major order. A Grid is immutable
// once built; transformations such as Map allocate a new buffer.
type Grid[T any] struct {
	size  geometry.Point
	cells []T
}

// Cell is one member of a Region: its position and, per direction, whether
// the neighbour on that side satisfies the region's membership predicate.
type Cell struct {
	Point     geometry.Point
	Neighbors geometry.DirectionMap[bool]
}

// Region is the ordered result of a flood fill. It is owned by the caller;
// the grid keeps no reference to it.
type Region []Cell

// Option configures Parse.
type Option func(*ParseOptions)

// ParseOptions controls how text is turned into a Grid[rune].
type ParseOptions struct {
	// PadRagged, when true, pads rows shorter than the widest row with Pad.
	// When false (default), ragged input is rejected with ErrNonRectangular.
	PadRagged bool
	// Pad is the sentinel cell used for padding.
	Pad rune
}

// DefaultParseOptions returns ParseOptions that reject ragged rows.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		PadRagged: false,
		Pad:       ' ',
	}
}

// WithPadding returns an Option that pads short rows with r.
func WithPadding(r rune) Option {
	return func(o *ParseOptions) {
		o.PadRagged = true
		o.Pad = r
	}
}
