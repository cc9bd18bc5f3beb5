// Package cells is a reactive value-propagation graph: mutable equality-gated
// cells, derived read-only views, and synchronous refresh fan-out over weakly
// held dependency edges.
package cells

import (
	"fmt"
	"weak"
)

// Dependent receives refresh signals from publishers it is registered with.
type Dependent interface {
	Refresh()
}

// Disposable is a teardown handle. Dispose is always idempotent.
type Disposable interface {
	Dispose()
}

// View is the read contract shared by cells and every derived node. A view's
// value is always consistent with the last refresh it accepted, which for
// filtering views is not necessarily the source's current value.
type View[T any] interface {
	Value() T

	deps() *Registry
	weakRef() func() (View[T], bool)
}

// Ownership says whether a combinator disposes its source when it is itself
// disposed, or merely observes a source owned elsewhere.
type Ownership uint8

const (
	Observed Ownership = iota
	Owned
)

// AccessAfterDisposeError is raised (as a panic value) when a node whose
// source reference has been cleared by disposal is read.
type AccessAfterDisposeError struct {
	Node string
}

func (e *AccessAfterDisposeError) Error() string {
	return fmt.Sprintf("%s: access after dispose", e.Node)
}

var (
	_ View[int] = (*Cell[int])(nil)
	_ View[int] = (*MappedView[string, int])(nil)
	_ View[int] = (*Map2View[string, bool, int])(nil)
	_ View[int] = (*FilteredView[int])(nil)
	_ View[int] = (*CachedView[int])(nil)

	_ Disposable = (*Subscription)(nil)
	_ Disposable = (*Bag)(nil)
)

// weakView resolves a concrete node through a weak pointer, so holding the
// resolver never extends the node's lifetime.
func weakView[T, S any, PS interface {
	*S
	View[T]
}](v PS) func() (View[T], bool) {
	p := weak.Make((*S)(v))
	return func() (View[T], bool) {
		if s := p.Value(); s != nil {
			return PS(s), true
		}
		return nil, false
	}
}
