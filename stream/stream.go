// Package stream bridges the cell graph to conventional push/subscribe
// external observers, in both directions.
package stream

import (
	"sync"

	"github.com/cellwire/cellwire/cells"
)

// Stream is the push protocol spoken by host collaborators: a subscriber
// receives values emitted after it subscribes. There is no replay of
// historical values.
type Stream[T any] interface {
	Subscribe(fn func(T)) cells.Disposable
}

// Emitter is a concrete thread-safe push source. It is both the default
// host-side implementation of Stream and the seed side of IntoCell.
type Emitter[T any] struct {
	mu   sync.Mutex
	subs map[uint64]func(T)
	next uint64
}

func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{subs: map[uint64]func(T){}}
}

func (e *Emitter[T]) Subscribe(fn func(T)) cells.Disposable {
	e.mu.Lock()
	id := e.next
	e.next++
	e.subs[id] = fn
	e.mu.Unlock()
	return &unsubscribe{fn: func() {
		e.mu.Lock()
		delete(e.subs, id)
		e.mu.Unlock()
	}}
}

// Emit pushes v to every current subscriber on the calling goroutine. The
// subscriber set is snapshotted first so a callback may subscribe or
// unsubscribe during delivery.
func (e *Emitter[T]) Emit(v T) {
	e.mu.Lock()
	fns := make([]func(T), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// unsubscribe is an idempotent teardown handle around a single detach.
type unsubscribe struct {
	once sync.Once
	fn   func()
}

func (u *unsubscribe) Dispose() {
	u.once.Do(u.fn)
}
