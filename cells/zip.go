package cells

import (
	"runtime"
	"sync"
)

// Zip3View derives a value from 3 sources. Like Map2View it always
// observes; ownership of a source is never transferred.
type Zip3View[T0, T1, T2, O any] struct {
	mu sync.Mutex
	src0 View[T0]
	src1 View[T1]
	src2 View[T2]
	fn   func(T0, T1, T2) O
	reg  *Registry
	edge *edge
}

func Zip3[T0, T1, T2, O any](
	src0 View[T0],
	src1 View[T1],
	src2 View[T2],
	fn func(T0, T1, T2) O,
) *Zip3View[T0, T1, T2, O] {
	v := &Zip3View[T0, T1, T2, O]{
		src0: src0,
		src1: src1,
		src2: src2,
		fn:  fn,
		reg: NewRegistry(),
	}
	v.edge = weakDependent(v)
	src0.deps().add(v.edge)
	src1.deps().add(v.edge)
	src2.deps().add(v.edge)
	runtime.SetFinalizer(v, (*Zip3View[T0, T1, T2, O]).Dispose)
	return v
}

func (v *Zip3View[T0, T1, T2, O]) Value() O {
	v.mu.Lock()
	src0, src1, src2 := v.src0, v.src1, v.src2
	v.mu.Unlock()
	if src0 == nil {
		panic(&AccessAfterDisposeError{Node: "Zip3View"})
	}
	return v.fn(src0.Value(), src1.Value(), src2.Value())
}

func (v *Zip3View[T0, T1, T2, O]) Refresh() {
	v.reg.Signal()
}

func (v *Zip3View[T0, T1, T2, O]) Dispose() {
	v.mu.Lock()
	src0, src1, src2 := v.src0, v.src1, v.src2
	v.src0, v.src1, v.src2 = nil, nil, nil
	v.mu.Unlock()
	if src0 == nil {
		return
	}
	runtime.SetFinalizer(v, nil)
	src0.deps().remove(v.edge)
	src1.deps().remove(v.edge)
	src2.deps().remove(v.edge)
}

func (v *Zip3View[T0, T1, T2, O]) deps() *Registry {
	return v.reg
}

func (v *Zip3View[T0, T1, T2, O]) weakRef() func() (View[O], bool) {
	return weakView[O](v)
}

// Zip4View derives a value from 4 sources. Like Map2View it always
// observes; ownership of a source is never transferred.
type Zip4View[T0, T1, T2, T3, O any] struct {
	mu sync.Mutex
	src0 View[T0]
	src1 View[T1]
	src2 View[T2]
	src3 View[T3]
	fn   func(T0, T1, T2, T3) O
	reg  *Registry
	edge *edge
}

func Zip4[T0, T1, T2, T3, O any](
	src0 View[T0],
	src1 View[T1],
	src2 View[T2],
	src3 View[T3],
	fn func(T0, T1, T2, T3) O,
) *Zip4View[T0, T1, T2, T3, O] {
	v := &Zip4View[T0, T1, T2, T3, O]{
		src0: src0,
		src1: src1,
		src2: src2,
		src3: src3,
		fn:  fn,
		reg: NewRegistry(),
	}
	v.edge = weakDependent(v)
	src0.deps().add(v.edge)
	src1.deps().add(v.edge)
	src2.deps().add(v.edge)
	src3.deps().add(v.edge)
	runtime.SetFinalizer(v, (*Zip4View[T0, T1, T2, T3, O]).Dispose)
	return v
}

func (v *Zip4View[T0, T1, T2, T3, O]) Value() O {
	v.mu.Lock()
	src0, src1, src2, src3 := v.src0, v.src1, v.src2, v.src3
	v.mu.Unlock()
	if src0 == nil {
		panic(&AccessAfterDisposeError{Node: "Zip4View"})
	}
	return v.fn(src0.Value(), src1.Value(), src2.Value(), src3.Value())
}

func (v *Zip4View[T0, T1, T2, T3, O]) Refresh() {
	v.reg.Signal()
}

func (v *Zip4View[T0, T1, T2, T3, O]) Dispose() {
	v.mu.Lock()
	src0, src1, src2, src3 := v.src0, v.src1, v.src2, v.src3
	v.src0, v.src1, v.src2, v.src3 = nil, nil, nil, nil
	v.mu.Unlock()
	if src0 == nil {
		return
	}
	runtime.SetFinalizer(v, nil)
	src0.deps().remove(v.edge)
	src1.deps().remove(v.edge)
	src2.deps().remove(v.edge)
	src3.deps().remove(v.edge)
}

func (v *Zip4View[T0, T1, T2, T3, O]) deps() *Registry {
	return v.reg
}

func (v *Zip4View[T0, T1, T2, T3, O]) weakRef() func() (View[O], bool) {
	return weakView[O](v)
}

// Zip5View derives a value from 5 sources. Like Map2View it always
// observes; ownership of a source is never transferred.
type Zip5View[T0, T1, T2, T3, T4, O any] struct {
	mu sync.Mutex
	src0 View[T0]
	src1 View[T1]
	src2 View[T2]
	src3 View[T3]
	src4 View[T4]
	fn   func(T0, T1, T2, T3, T4) O
	reg  *Registry
	edge *edge
}

func Zip5[T0, T1, T2, T3, T4, O any](
	src0 View[T0],
	src1 View[T1],
	src2 View[T2],
	src3 View[T3],
	src4 View[T4],
	fn func(T0, T1, T2, T3, T4) O,
) *Zip5View[T0, T1, T2, T3, T4, O] {
	v := &Zip5View[T0, T1, T2, T3, T4, O]{
		src0: src0,
		src1: src1,
		src2: src2,
		src3: src3,
		src4: src4,
		fn:  fn,
		reg: NewRegistry(),
	}
	v.edge = weakDependent(v)
	src0.deps().add(v.edge)
	src1.deps().add(v.edge)
	src2.deps().add(v.edge)
	src3.deps().add(v.edge)
	src4.deps().add(v.edge)
	runtime.SetFinalizer(v, (*Zip5View[T0, T1, T2, T3, T4, O]).Dispose)
	return v
}

func (v *Zip5View[T0, T1, T2, T3, T4, O]) Value() O {
	v.mu.Lock()
	src0, src1, src2, src3, src4 := v.src0, v.src1, v.src2, v.src3, v.src4
	v.mu.Unlock()
	if src0 == nil {
		panic(&AccessAfterDisposeError{Node: "Zip5View"})
	}
	return v.fn(src0.Value(), src1.Value(), src2.Value(), src3.Value(), src4.Value())
}

func (v *Zip5View[T0, T1, T2, T3, T4, O]) Refresh() {
	v.reg.Signal()
}

func (v *Zip5View[T0, T1, T2, T3, T4, O]) Dispose() {
	v.mu.Lock()
	src0, src1, src2, src3, src4 := v.src0, v.src1, v.src2, v.src3, v.src4
	v.src0, v.src1, v.src2, v.src3, v.src4 = nil, nil, nil, nil, nil
	v.mu.Unlock()
	if src0 == nil {
		return
	}
	runtime.SetFinalizer(v, nil)
	src0.deps().remove(v.edge)
	src1.deps().remove(v.edge)
	src2.deps().remove(v.edge)
	src3.deps().remove(v.edge)
	src4.deps().remove(v.edge)
}

func (v *Zip5View[T0, T1, T2, T3, T4, O]) deps() *Registry {
	return v.reg
}

func (v *Zip5View[T0, T1, T2, T3, T4, O]) weakRef() func() (View[O], bool) {
	return weakView[O](v)
}

// Zip6View derives a value from 6 sources. Like Map2View it always
// observes; ownership of a source is never transferred.
type Zip6View[T0, T1, T2, T3, T4, T5, O any] struct {
	mu sync.Mutex
	src0 View[T0]
	src1 View[T1]
	src2 View[T2]
	src3 View[T3]
	src4 View[T4]
	src5 View[T5]
	fn   func(T0, T1, T2, T3, T4, T5) O
	reg  *Registry
	edge *edge
}

func Zip6[T0, T1, T2, T3, T4, T5, O any](
	src0 View[T0],
	src1 View[T1],
	src2 View[T2],
	src3 View[T3],
	src4 View[T4],
	src5 View[T5],
	fn func(T0, T1, T2, T3, T4, T5) O,
) *Zip6View[T0, T1, T2, T3, T4, T5, O] {
	v := &Zip6View[T0, T1, T2, T3, T4, T5, O]{
		src0: src0,
		src1: src1,
		src2: src2,
		src3: src3,
		src4: src4,
		src5: src5,
		fn:  fn,
		reg: NewRegistry(),
	}
	v.edge = weakDependent(v)
	src0.deps().add(v.edge)
	src1.deps().add(v.edge)
	src2.deps().add(v.edge)
	src3.deps().add(v.edge)
	src4.deps().add(v.edge)
	src5.deps().add(v.edge)
	runtime.SetFinalizer(v, (*Zip6View[T0, T1, T2, T3, T4, T5, O]).Dispose)
	return v
}

func (v *Zip6View[T0, T1, T2, T3, T4, T5, O]) Value() O {
	v.mu.Lock()
	src0, src1, src2, src3, src4, src5 := v.src0, v.src1, v.src2, v.src3, v.src4, v.src5
	v.mu.Unlock()
	if src0 == nil {
		panic(&AccessAfterDisposeError{Node: "Zip6View"})
	}
	return v.fn(src0.Value(), src1.Value(), src2.Value(), src3.Value(), src4.Value(), src5.Value())
}

func (v *Zip6View[T0, T1, T2, T3, T4, T5, O]) Refresh() {
	v.reg.Signal()
}

func (v *Zip6View[T0, T1, T2, T3, T4, T5, O]) Dispose() {
	v.mu.Lock()
	src0, src1, src2, src3, src4, src5 := v.src0, v.src1, v.src2, v.src3, v.src4, v.src5
	v.src0, v.src1, v.src2, v.src3, v.src4, v.src5 = nil, nil, nil, nil, nil, nil
	v.mu.Unlock()
	if src0 == nil {
		return
	}
	runtime.SetFinalizer(v, nil)
	src0.deps().remove(v.edge)
	src1.deps().remove(v.edge)
	src2.deps().remove(v.edge)
	src3.deps().remove(v.edge)
	src4.deps().remove(v.edge)
	src5.deps().remove(v.edge)
}

func (v *Zip6View[T0, T1, T2, T3, T4, T5, O]) deps() *Registry {
	return v.reg
}

func (v *Zip6View[T0, T1, T2, T3, T4, T5, O]) weakRef() func() (View[O], bool) {
	return weakView[O](v)
}

// Zip7View derives a value from 7 sources. Like Map2View it always
// observes; ownership of a source is never transferred.
type Zip7View[T0, T1, T2, T3, T4, T5, T6, O any] struct {
	mu sync.Mutex
	src0 View[T0]
	src1 View[T1]
	src2 View[T2]
	src3 View[T3]
	src4 View[T4]
	src5 View[T5]
	src6 View[T6]
	fn   func(T0, T1, T2, T3, T4, T5, T6) O
	reg  *Registry
	edge *edge
}

func Zip7[T0, T1, T2, T3, T4, T5, T6, O any](
	src0 View[T0],
	src1 View[T1],
	src2 View[T2],
	src3 View[T3],
	src4 View[T4],
	src5 View[T5],
	src6 View[T6],
	fn func(T0, T1, T2, T3, T4, T5, T6) O,
) *Zip7View[T0, T1, T2, T3, T4, T5, T6, O] {
	v := &Zip7View[T0, T1, T2, T3, T4, T5, T6, O]{
		src0: src0,
		src1: src1,
		src2: src2,
		src3: src3,
		src4: src4,
		src5: src5,
		src6: src6,
		fn:  fn,
		reg: NewRegistry(),
	}
	v.edge = weakDependent(v)
	src0.deps().add(v.edge)
	src1.deps().add(v.edge)
	src2.deps().add(v.edge)
	src3.deps().add(v.edge)
	src4.deps().add(v.edge)
	src5.deps().add(v.edge)
	src6.deps().add(v.edge)
	runtime.SetFinalizer(v, (*Zip7View[T0, T1, T2, T3, T4, T5, T6, O]).Dispose)
	return v
}

func (v *Zip7View[T0, T1, T2, T3, T4, T5, T6, O]) Value() O {
	v.mu.Lock()
	src0, src1, src2, src3, src4, src5, src6 := v.src0, v.src1, v.src2, v.src3, v.src4, v.src5, v.src6
	v.mu.Unlock()
	if src0 == nil {
		panic(&AccessAfterDisposeError{Node: "Zip7View"})
	}
	return v.fn(src0.Value(), src1.Value(), src2.Value(), src3.Value(), src4.Value(), src5.Value(), src6.Value())
}

func (v *Zip7View[T0, T1, T2, T3, T4, T5, T6, O]) Refresh() {
	v.reg.Signal()
}

func (v *Zip7View[T0, T1, T2, T3, T4, T5, T6, O]) Dispose() {
	v.mu.Lock()
	src0, src1, src2, src3, src4, src5, src6 := v.src0, v.src1, v.src2, v.src3, v.src4, v.src5, v.src6
	v.src0, v.src1, v.src2, v.src3, v.src4, v.src5, v.src6 = nil, nil, nil, nil, nil, nil, nil
	v.mu.Unlock()
	if src0 == nil {
		return
	}
	runtime.SetFinalizer(v, nil)
	src0.deps().remove(v.edge)
	src1.deps().remove(v.edge)
	src2.deps().remove(v.edge)
	src3.deps().remove(v.edge)
	src4.deps().remove(v.edge)
	src5.deps().remove(v.edge)
	src6.deps().remove(v.edge)
}

func (v *Zip7View[T0, T1, T2, T3, T4, T5, T6, O]) deps() *Registry {
	return v.reg
}

func (v *Zip7View[T0, T1, T2, T3, T4, T5, T6, O]) weakRef() func() (View[O], bool) {
	return weakView[O](v)
}

// Zip8View derives a value from 8 sources. Like Map2View it always
// observes; ownership of a source is never transferred.
type Zip8View[T0, T1, T2, T3, T4, T5, T6, T7, O any] struct {
	mu sync.Mutex
	src0 View[T0]
	src1 View[T1]
	src2 View[T2]
	src3 View[T3]
	src4 View[T4]
	src5 View[T5]
	src6 View[T6]
	src7 View[T7]
	fn   func(T0, T1, T2, T3, T4, T5, T6, T7) O
	reg  *Registry
	edge *edge
}

func Zip8[T0, T1, T2, T3, T4, T5, T6, T7, O any](
	src0 View[T0],
	src1 View[T1],
	src2 View[T2],
	src3 View[T3],
	src4 View[T4],
	src5 View[T5],
	src6 View[T6],
	src7 View[T7],
	fn func(T0, T1, T2, T3, T4, T5, T6, T7) O,
) *Zip8View[T0, T1, T2, T3, T4, T5, T6, T7, O] {
	v := &Zip8View[T0, T1, T2, T3, T4, T5, T6, T7, O]{
		src0: src0,
		src1: src1,
		src2: src2,
		src3: src3,
		src4: src4,
		src5: src5,
		src6: src6,
		src7: src7,
		fn:  fn,
		reg: NewRegistry(),
	}
	v.edge = weakDependent(v)
	src0.deps().add(v.edge)
	src1.deps().add(v.edge)
	src2.deps().add(v.edge)
	src3.deps().add(v.edge)
	src4.deps().add(v.edge)
	src5.deps().add(v.edge)
	src6.deps().add(v.edge)
	src7.deps().add(v.edge)
	runtime.SetFinalizer(v, (*Zip8View[T0, T1, T2, T3, T4, T5, T6, T7, O]).Dispose)
	return v
}

func (v *Zip8View[T0, T1, T2, T3, T4, T5, T6, T7, O]) Value() O {
	v.mu.Lock()
	src0, src1, src2, src3, src4, src5, src6, src7 := v.src0, v.src1, v.src2, v.src3, v.src4, v.src5, v.src6, v.src7
	v.mu.Unlock()
	if src0 == nil {
		panic(&AccessAfterDisposeError{Node: "Zip8View"})
	}
	return v.fn(src0.Value(), src1.Value(), src2.Value(), src3.Value(), src4.Value(), src5.Value(), src6.Value(), src7.Value())
}

func (v *Zip8View[T0, T1, T2, T3, T4, T5, T6, T7, O]) Refresh() {
	v.reg.Signal()
}

func (v *Zip8View[T0, T1, T2, T3, T4, T5, T6, T7, O]) Dispose() {
	v.mu.Lock()
	src0, src1, src2, src3, src4, src5, src6, src7 := v.src0, v.src1, v.src2, v.src3, v.src4, v.src5, v.src6, v.src7
	v.src0, v.src1, v.src2, v.src3, v.src4, v.src5, v.src6, v.src7 = nil, nil, nil, nil, nil, nil, nil, nil
	v.mu.Unlock()
	if src0 == nil {
		return
	}
	runtime.SetFinalizer(v, nil)
	src0.deps().remove(v.edge)
	src1.deps().remove(v.edge)
	src2.deps().remove(v.edge)
	src3.deps().remove(v.edge)
	src4.deps().remove(v.edge)
	src5.deps().remove(v.edge)
	src6.deps().remove(v.edge)
	src7.deps().remove(v.edge)
}

func (v *Zip8View[T0, T1, T2, T3, T4, T5, T6, T7, O]) deps() *Registry {
	return v.reg
}

func (v *Zip8View[T0, T1, T2, T3, T4, T5, T6, T7, O]) weakRef() func() (View[O], bool) {
	return weakView[O](v)
}
