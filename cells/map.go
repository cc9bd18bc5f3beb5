package cells

import (
	"runtime"
	"sync"
)

// MappedView derives a value from a single source through a pure function.
// There is no caching layer in this variant: every read recomputes from the
// source, trading recomputation cost for always-fresh results and simpler
// invalidation.
type MappedView[A, B any] struct {
	mu   sync.Mutex
	src  View[A] // nil once disposed
	fn   func(A) B
	own  Ownership
	reg  *Registry
	edge *edge
}

// Map builds a mapping view over src. With Owned, disposing the view also
// disposes src if it implements Disposable.
func Map[A, B any](src View[A], own Ownership, fn func(A) B) *MappedView[A, B] {
	v := &MappedView[A, B]{
		src: src,
		fn:  fn,
		own: own,
		reg: NewRegistry(),
	}
	v.edge = weakDependent(v)
	src.deps().add(v.edge)
	runtime.SetFinalizer(v, (*MappedView[A, B]).Dispose)
	return v
}

// Value recomputes fn(source value) on every read.
func (v *MappedView[A, B]) Value() B {
	v.mu.Lock()
	src := v.src
	v.mu.Unlock()
	if src == nil {
		panic(&AccessAfterDisposeError{Node: "MappedView"})
	}
	return v.fn(src.Value())
}

// Refresh forwards the signal without recomputing; dependents recompute
// lazily on their next read.
func (v *MappedView[A, B]) Refresh() {
	v.reg.Signal()
}

// Dispose deregisters from the source and clears the source reference so a
// later read fails loudly instead of serving stale data. Idempotent.
func (v *MappedView[A, B]) Dispose() {
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

func (v *MappedView[A, B]) deps() *Registry {
	return v.reg
}

func (v *MappedView[A, B]) weakRef() func() (View[B], bool) {
	return weakView[B](v)
}
