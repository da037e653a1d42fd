// Package pool provides a small free-list for reusable objects.
//
// It is intentionally not safe for concurrent use: the layout engine runs on
// the single goroutine that drives the UI update cycle, so the pool carries
// no locking.
package pool

// Pool caches instances of T for reuse. Released instances are reset and
// handed back by Acquire in no particular order.
type Pool[T any] struct {
	free  []T
	alloc func() T
	reset func(T)

	countAll int
}

// New creates a Pool that allocates with alloc and resets released
// instances with reset. reset may be nil.
func New[T any](alloc func() T, reset func(T)) *Pool[T] {
	return &Pool[T]{alloc: alloc, reset: reset}
}

// Acquire returns a reused instance if one is free, or allocates a new one.
func (p *Pool[T]) Acquire() T {
	if n := len(p.free); n > 0 {
		item := p.free[n-1]
		p.free = p.free[:n-1]
		return item
	}
	p.countAll++
	return p.alloc()
}

// Release resets the instance and returns it to the pool.
// The caller must not use the instance afterwards.
func (p *Pool[T]) Release(item T) {
	if p.reset != nil {
		p.reset(item)
	}
	p.free = append(p.free, item)
}

// CountAll returns the total number of instances ever allocated.
func (p *Pool[T]) CountAll() int { return p.countAll }

// CountInactive returns the number of instances currently in the pool.
func (p *Pool[T]) CountInactive() int { return len(p.free) }

// CountActive returns the number of instances currently in use.
func (p *Pool[T]) CountActive() int { return p.countAll - len(p.free) }
