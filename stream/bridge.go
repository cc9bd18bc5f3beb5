package stream

import "github.com/cellwire/cellwire/cells"

// ViewStream exposes a view as a subscribable stream. Each subscriber gets
// its own refresh edge on the view; the view's value at subscribe time is
// not delivered, only changes after it.
type ViewStream[T any] struct {
	v cells.View[T]
}

func FromView[T any](v cells.View[T]) *ViewStream[T] {
	return &ViewStream[T]{v: v}
}

func (s *ViewStream[T]) Subscribe(fn func(T)) cells.Disposable {
	v := s.v
	return cells.OnRefresh(v, func() {
		fn(v.Value())
	})
}

// IntoCell seeds a fresh cell from an external push source. Every emission
// is written through the cell's normal equality-gated Set. Disposing the
// returned handle stops further writes; the cell keeps its last value.
func IntoCell[T any](seed T, src Stream[T]) (*cells.Cell[T], cells.Disposable) {
	c := cells.NewCell(seed)
	sub := src.Subscribe(func(v T) {
		c.Set(v)
	})
	return c, sub
}
