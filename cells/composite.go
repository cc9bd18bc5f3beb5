package cells

import "sync"

// Bag aggregates teardown handles for joint lifecycle management. Members
// are kept in the order they were added.
type Bag struct {
	mu    sync.Mutex
	items []Disposable
}

func NewBag(items ...Disposable) *Bag {
	return &Bag{items: items}
}

func (b *Bag) Add(d Disposable) {
	if d == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, d)
}

// Remove detaches d from the bag without disposing it.
func (b *Bag) Remove(d Disposable) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, item := range b.items {
		if item == d {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return
		}
	}
}

// Dispose disposes every currently held member exactly once and clears the
// collection. Calling it again after new members are added disposes those
// too; on an empty bag it is a no-op.
func (b *Bag) Dispose() {
	b.mu.Lock()
	items := b.items
	b.items = nil
	b.mu.Unlock()

	// Members are disposed outside the lock; one of them may reach back
	// into the bag during its own teardown.
	for _, item := range items {
		item.Dispose()
	}
}

// Scoped runs fn with a fresh bag and disposes it on every exit path,
// including panic. This is the standard idiom for guaranteed release when no
// longer-lived owner takes over the handles.
func Scoped(fn func(*Bag)) {
	b := NewBag()
	defer b.Dispose()
	fn(b)
}
