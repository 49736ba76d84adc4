package noise

import (
	"fmt"
	"sync"

	"github.com/gogpu/noise/internal/parallel"
)

// Handle identifies a context owned by a Registry.
// The zero Handle is never issued and marks a failed Create.
type Handle uint64

// Registry hands out opaque handles to noise contexts for callers that
// cannot hold Go pointers, such as foreign-function bindings.
//
// Handles are never reused, so a destroyed handle stays invalid and every
// later call with it returns ErrInvalidHandle.
//
// Thread safety: Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	contexts map[Handle]*Context
	next     Handle
	max      int
	pool     *parallel.RowPool
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	o := defaultRegistryOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{
		contexts: make(map[Handle]*Context),
		max:      o.maxContexts,
	}
	if o.workers > 1 {
		r.pool = parallel.NewRowPool(o.workers)
	}
	return r
}

// Create builds a context from seed and returns its handle.
// If the registry is full or its handle space is exhausted, Create returns
// the zero Handle and an error wrapping ErrAllocationFailure.
func (r *Registry) Create(seed int64) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.contexts == nil {
		return 0, fmt.Errorf("%w: registry closed", ErrAllocationFailure)
	}
	if r.max > 0 && len(r.contexts) >= r.max {
		return 0, fmt.Errorf("%w: %d live contexts (limit %d)", ErrAllocationFailure, len(r.contexts), r.max)
	}
	if r.next == ^Handle(0) {
		return 0, fmt.Errorf("%w: handle space exhausted", ErrAllocationFailure)
	}

	r.next++
	h := r.next
	r.contexts[h] = New(seed)
	Logger().Debug("noise: handle created", "handle", uint64(h), "seed", seed)
	return h, nil
}

// Destroy releases the context behind h.
func (r *Registry) Destroy(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contexts[h]; !ok {
		return fmt.Errorf("%w: %d", ErrInvalidHandle, uint64(h))
	}
	delete(r.contexts, h)
	Logger().Debug("noise: handle destroyed", "handle", uint64(h))
	return nil
}

// Context returns the context behind h.
func (r *Registry) Context(h Handle) (*Context, error) {
	r.mu.RLock()
	c, ok := r.contexts[h]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHandle, uint64(h))
	}
	return c, nil
}

// Eval2D evaluates the context behind h at (x, y).
func (r *Registry) Eval2D(h Handle, x, y float64) (float64, error) {
	c, err := r.Context(h)
	if err != nil {
		return 0, err
	}
	return c.Eval2D(x, y), nil
}

// Fill fills buf with the context behind h. See Context.Fill.
// Fills run on the registry's worker pool when it has one; the registry
// cannot be closed while a fill is in flight.
func (r *Registry) Fill(h Handle, buf []float32, width, height, octaves int) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.contexts[h]
	if !ok {
		return fmt.Errorf("%w: %d", ErrInvalidHandle, uint64(h))
	}
	if r.pool != nil {
		return c.Fill(buf, width, height, octaves, withPool(r.pool))
	}
	return c.Fill(buf, width, height, octaves)
}

// Len returns the number of live contexts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contexts)
}

// Close destroys every remaining context and stops the worker pool.
// Create fails after Close. Close is safe to call multiple times.
func (r *Registry) Close() {
	r.mu.Lock()
	n := len(r.contexts)
	r.contexts = nil
	r.mu.Unlock()

	if r.pool != nil {
		r.pool.Close()
	}
	Logger().Debug("noise: registry closed", "released", n)
}
