package cssfilter

// Option configures a Solver.
//
// Example:
//
//	// Default search
//	res := cssfilter.Solve(cssfilter.RGB{R: 210, G: 15, B: 57})
//
//	// Search only from the neutral seeds, with a shorter local search
//	seeds := cssfilter.DefaultSeeds()[:2]
//	res := cssfilter.Solve(target, cssfilter.WithSeeds(seeds...), cssfilter.WithMaxIterations(500))
type Option func(*options)

// options holds optional configuration for Solver creation.
type options struct {
	seeds         []Seed
	maxIterations int
}

// defaultOptions returns the default solver options.
func defaultOptions() options {
	return options{
		seeds:         defaultSeeds,
		maxIterations: maxIterations,
	}
}

// WithSeeds replaces the seed table. Seeds are searched in the given order.
// Calling WithSeeds with no seeds keeps the default table.
func WithSeeds(seeds ...Seed) Option {
	return func(o *options) {
		if len(seeds) > 0 {
			o.seeds = append([]Seed(nil), seeds...)
		}
	}
}

// WithMaxIterations caps the iterations of each local search.
// Values below 1 keep the default.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}
