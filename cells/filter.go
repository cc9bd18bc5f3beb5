package cells

import (
	"runtime"
	"sync"
)

// FilteredView passes through only source values accepted by its predicate,
// holding the last accepted value. The cache is seeded from the source at
// construction whether or not that value passes the predicate, so a reader
// always has something to read. While the predicate keeps rejecting, Value
// stays at the last accepted value for arbitrarily long; that staleness is
// the contract, not a defect.
type FilteredView[T any] struct {
	mu     sync.Mutex
	src    View[T] // nil once disposed
	pred   func(T) bool
	cached T
	own    Ownership
	reg    *Registry
	edge   *edge
}

func Filter[T any](src View[T], own Ownership, pred func(T) bool) *FilteredView[T] {
	v := &FilteredView[T]{
		src:    src,
		pred:   pred,
		cached: src.Value(),
		own:    own,
		reg:    NewRegistry(),
	}
	v.edge = weakDependent(v)
	src.deps().add(v.edge)
	runtime.SetFinalizer(v, (*FilteredView[T]).Dispose)
	return v
}

// Value returns the last accepted value.
func (v *FilteredView[T]) Value() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.src == nil {
		panic(&AccessAfterDisposeError{Node: "FilteredView"})
	}
	return v.cached
}

// Refresh reads the source's current value; if the predicate accepts it, the
// cache is updated and one signal is forwarded, otherwise nothing happens.
func (v *FilteredView[T]) Refresh() {
	v.mu.Lock()
	src := v.src
	v.mu.Unlock()
	if src == nil {
		return
	}
	next := src.Value()
	if !v.pred(next) {
		return
	}
	v.mu.Lock()
	v.cached = next
	v.mu.Unlock()
	v.reg.Signal()
}

func (v *FilteredView[T]) Dispose() {
	v.mu.Lock()
	src := v.src
	v.src = nil
	v.mu.Unlock()
	if src == nil {
		return
	}
	runtime.SetFinalizer(v, nil)
	src.deps().remove(v.edge)
	if v.own == Owned {
		if d, ok := src.(Disposable); ok {
			d.Dispose()
		}
	}
}

func (v *FilteredView[T]) deps() *Registry {
	return v.reg
}

func (v *FilteredView[T]) weakRef() func() (View[T], bool) {
	return weakView[T](v)
}
