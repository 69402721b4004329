package distance

// DefaultTolerance is the allowed deviation of a distribution's sum from 1.
const DefaultTolerance = 1e-6

// Options configures the distribution checks used by the divergences.
type Options struct {
	// Tolerance is the largest |sum-1| accepted by [IsDistribution].
	Tolerance float64
}

// DefaultOptions returns Options with a tolerance of [DefaultTolerance].
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// Option mutates Options.
type Option func(*Options)

// WithTolerance overrides the distribution sum tolerance. Negative values
// are treated as 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = max(tol, 0) }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
