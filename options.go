package noise

import "github.com/gogpu/noise/internal/parallel"

// FillOption configures a single Fill or FillOctaves call.
//
// Example:
//
//	// Sequential fill
//	err := ctx.Fill(buf, 256, 256, 1)
//
//	// Spread rows over 8 goroutines
//	err := ctx.Fill(buf, 256, 256, 4, noise.WithWorkers(8))
type FillOption func(*fillOptions)

// fillOptions holds optional configuration for a fill.
type fillOptions struct {
	workers int
	pool    *parallel.RowPool
}

// defaultFillOptions returns the options for a sequential fill.
func defaultFillOptions() fillOptions {
	return fillOptions{
		workers: 1,
		pool:    nil,
	}
}

// WithWorkers spreads the fill over n goroutines, each computing a band of
// rows. Values of n below 2 keep the fill on the calling goroutine.
// The output is identical to a sequential fill.
func WithWorkers(n int) FillOption {
	return func(o *fillOptions) {
		o.workers = n
	}
}

// withPool runs the fill on an existing pool instead of starting one.
// Used by Registry, which owns a long-lived pool.
func withPool(p *parallel.RowPool) FillOption {
	return func(o *fillOptions) {
		o.pool = p
	}
}

// RegistryOption configures a Registry during creation.
type RegistryOption func(*registryOptions)

// registryOptions holds optional configuration for a Registry.
type registryOptions struct {
	maxContexts int
	workers     int
}

// defaultRegistryOptions returns an unbounded, sequential registry configuration.
func defaultRegistryOptions() registryOptions {
	return registryOptions{
		maxContexts: 0,
		workers:     1,
	}
}

// WithMaxContexts limits how many live contexts the registry holds.
// Create returns ErrAllocationFailure once the limit is reached.
// Zero or a negative value means no limit.
func WithMaxContexts(n int) RegistryOption {
	return func(o *registryOptions) {
		o.maxContexts = n
	}
}

// WithRegistryWorkers gives the registry a worker pool of n goroutines that
// all of its fills share. Values below 2 keep fills sequential.
func WithRegistryWorkers(n int) RegistryOption {
	return func(o *registryOptions) {
		o.workers = n
	}
}
