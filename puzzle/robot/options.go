package robot

import "github.com/katalvlaran/lvgrid/geometry"

// Default patrol area and duration.
var DefaultSize = geometry.Pt(101, 103)

const DefaultSeconds = 100

// Options configures a patrol simulation.
type Options struct {
	// Size is the wrapped area the robots move in.
	Size geometry.Point
	// Seconds is how long Part1 simulates before scoring.
	Seconds int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the puzzle's 101×103 area and 100 seconds.
func DefaultOptions() Options {
	return Options{Size: DefaultSize, Seconds: DefaultSeconds}
}

// WithSize overrides the area. Non-positive sizes are ignored.
func WithSize(size geometry.Point) Option {
	return func(o *Options) {
		if size.X > 0 && size.Y > 0 {
			o.Size = size
		}
	}
}

// WithSeconds overrides the Part1 duration. Negative values are ignored.
func WithSeconds(s int) Option {
	return func(o *Options) {
		if s >= 0 {
			o.Seconds = s
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
