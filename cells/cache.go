package cells

import (
	"runtime"
	"sync"
)

// CachedView holds the source's last value and only a weak reference to the
// source itself, so a long combinator chain never extends the source's
// lifetime through it. It is the one node type built to outlive its source:
// once the source has been collected, refresh and dispose silently no-op and
// Value keeps serving the cached value.
type CachedView[T any] struct {
	mu       sync.Mutex
	resolve  func() (View[T], bool) // nil once disposed
	cached   T
	reg      *Registry
	edge     *edge
	disposed bool
}

func Cache[T any](src View[T]) *CachedView[T] {
	v := &CachedView[T]{
		resolve: src.weakRef(),
		cached:  src.Value(),
		reg:     NewRegistry(),
	}
	v.edge = weakDependent(v)
	src.deps().add(v.edge)
	runtime.SetFinalizer(v, (*CachedView[T]).Dispose)
	return v
}

func (v *CachedView[T]) Value() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		panic(&AccessAfterDisposeError{Node: "CachedView"})
	}
	return v.cached
}

// Refresh re-reads the source if it is still reachable, updates the cache
// and forwards one signal. A collected source is silently ignored.
func (v *CachedView[T]) Refresh() {
	v.mu.Lock()
	resolve := v.resolve
	v.mu.Unlock()
	if resolve == nil {
		return
	}
	src, ok := resolve()
	if !ok {
		return
	}
	next := src.Value()
	v.mu.Lock()
	v.cached = next
	v.mu.Unlock()
	v.reg.Signal()
}

// Dispose deregisters from the source if it is still reachable; otherwise it
// is a no-op beyond marking the view disposed.
func (v *CachedView[T]) Dispose() {
	v.mu.Lock()
	if v.disposed {
		v.mu.Unlock()
		return
	}
	v.disposed = true
	resolve := v.resolve
	v.resolve = nil
	v.mu.Unlock()
	runtime.SetFinalizer(v, nil)
	if src, ok := resolve(); ok {
		src.deps().remove(v.edge)
	}
}

func (v *CachedView[T]) deps() *Registry {
	return v.reg
}

func (v *CachedView[T]) weakRef() func() (View[T], bool) {
	return weakView[T](v)
}
