package cells

import (
	"runtime"
	"sync"
)

// Map2View derives a value from two sources. It always observes: ownership
// of either source is never transferred.
type Map2View[A, B, C any] struct {
	mu   sync.Mutex
	src1 View[A] // both nil once disposed
	src2 View[B]
	fn   func(A, B) C
	reg  *Registry
	edge *edge
}

func Map2[A, B, C any](src1 View[A], src2 View[B], fn func(A, B) C) *Map2View[A, B, C] {
	v := &Map2View[A, B, C]{
		src1: src1,
		src2: src2,
		fn:   fn,
		reg:  NewRegistry(),
	}
	v.edge = weakDependent(v)
	src1.deps().add(v.edge)
	src2.deps().add(v.edge)
	runtime.SetFinalizer(v, (*Map2View[A, B, C]).Dispose)
	return v
}

// Value recomputes fn(source1 value, source2 value) on every read.
func (v *Map2View[A, B, C]) Value() C {
	v.mu.Lock()
	src1, src2 := v.src1, v.src2
	v.mu.Unlock()
	if src1 == nil {
		panic(&AccessAfterDisposeError{Node: "Map2View"})
	}
	return v.fn(src1.Value(), src2.Value())
}

// Refresh forwards each inbound signal independently. Refreshes from the
// two sources are not coalesced, so both changing in one propagation wave
// forwards twice.
func (v *Map2View[A, B, C]) Refresh() {
	v.reg.Signal()
}

// Dispose deregisters from both sources without disposing either.
func (v *Map2View[A, B, C]) Dispose() {
	v.mu.Lock()
	src1, src2 := v.src1, v.src2
	v.src1, v.src2 = nil, nil
	v.mu.Unlock()
	if src1 == nil {
		return
	}
	runtime.SetFinalizer(v, nil)
	src1.deps().remove(v.edge)
	src2.deps().remove(v.edge)
}

func (v *Map2View[A, B, C]) deps() *Registry {
	return v.reg
}

func (v *Map2View[A, B, C]) weakRef() func() (View[C], bool) {
	return weakView[C](v)
}
