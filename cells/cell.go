package cells

import (
	"reflect"
	"sync"
)

// Cell is the primitive mutable, equality-gated, notifying storage unit.
// Cells carry no listener list of their own; their registry lives in the
// process-wide table and is looked up by identity on demand.
type Cell[T any] struct {
	mu    sync.RWMutex
	value T
	eq    func(T, T) bool
}

type CellOption[T any] func(*Cell[T])

// WithEquals overrides the default equality used to gate writes.
func WithEquals[T any](eq func(T, T) bool) CellOption[T] {
	return func(c *Cell[T]) {
		c.eq = eq
	}
}

func NewCell[T any](initial T, opts ...CellOption[T]) *Cell[T] {
	c := &Cell[T]{value: initial}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cell[T]) Value() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Peek reads the current value. Cells have no tracking context, so this is
// the same as Value; it exists for parity with the write-side contract.
func (c *Cell[T]) Peek() T {
	return c.Value()
}

// Set stores v and signals all registered dependents synchronously before
// returning. A write equal to the current value is a no-op: no store, no
// signal.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	changed := !c.equals(c.value, v)
	if changed {
		c.value = v
	}
	c.mu.Unlock()

	// The value lock is released before fan-out so dependents may read back
	// through Value during the wave.
	if changed {
		RegistryFor(c).Signal()
	}
}

// Update atomically reads and rewrites the value through fn, with the same
// equality gate as Set.
func (c *Cell[T]) Update(fn func(T) T) {
	c.mu.Lock()
	next := fn(c.value)
	changed := !c.equals(c.value, next)
	if changed {
		c.value = next
	}
	c.mu.Unlock()

	if changed {
		RegistryFor(c).Signal()
	}
}

func (c *Cell[T]) equals(a, b T) bool {
	if c.eq != nil {
		return c.eq(a, b)
	}
	return defaultEquals(a, b)
}

func (c *Cell[T]) deps() *Registry {
	return RegistryFor(c)
}

func (c *Cell[T]) weakRef() func() (View[T], bool) {
	return weakView[T](c)
}

// defaultEquals compares with == for the common scalar types and falls back
// to reflect.DeepEqual for everything else.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		return reflect.DeepEqual(a, b)
	}
}
