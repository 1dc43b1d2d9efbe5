package matrix

// DefaultEpsilon is the pivot tolerance used by Solve when no option is given.
const DefaultEpsilon = 1e-6

// Option configures Solve.
type Option func(*Options)

// Options holds the numeric policy for Solve.
type Options struct {
	// Epsilon: pivots with absolute value below Epsilon count as zero.
	Epsilon float64
}

// DefaultOptions returns Options with Epsilon = DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// WithEpsilon returns an Option that sets the pivot tolerance.
// Negative values are ignored (the default is retained).
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps >= 0 {
			o.Epsilon = eps
		}
	}
}
