package hwlm

import (
	"sync"
	"sync/atomic"
)

// dispatchCell is the "fat dispatch" mechanism spec.md §4.8 and §9
// require: a process-wide function pointer, initialised to a resolver,
// that is replaced by the chosen specialisation exactly once. sync.Once
// gives the "competing threads race to the same value" guarantee more
// cheaply than a hand-rolled compare-and-swap retry loop, and the
// atomic.Pointer publication means every call after the first is two
// atomic loads (the Once's done flag, then ptr) plus an indirect call — no
// lock taken, no further feature checks.
type dispatchCell[F any] struct {
	once    sync.Once
	ptr     atomic.Pointer[F]
	resolve func() F
}

// newDispatchCell creates a cell that will call resolve exactly once, on
// the first call to get.
func newDispatchCell[F any](resolve func() F) *dispatchCell[F] {
	return &dispatchCell[F]{resolve: resolve}
}

// get returns the resolved function, running resolve on the first call
// from any goroutine and reusing the result for every later call.
func (c *dispatchCell[F]) get() F {
	c.once.Do(func() {
		f := c.resolve()
		c.ptr.Store(&f)
	})
	return *c.ptr.Load()
}
