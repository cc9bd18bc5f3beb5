package cells_test

import (
	"testing"

	"github.com/cellwire/cellwire/cells"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDisposable struct {
	disposed int
}

func (d *countingDisposable) Dispose() { d.disposed++ }

func TestBagDisposesAllOnce(t *testing.T) {
	a := &countingDisposable{}
	b := &countingDisposable{}

	bag := cells.NewBag()
	bag.Add(a)
	bag.Add(b)

	bag.Dispose()
	assert.Equal(t, 1, a.disposed)
	assert.Equal(t, 1, b.disposed)

	// repeatable: the collection was cleared, nothing disposes twice
	bag.Dispose()
	assert.Equal(t, 1, a.disposed)
	assert.Equal(t, 1, b.disposed)
}

// removing a member detaches it without disposing it
func TestBagRemove(t *testing.T) {
	a := &countingDisposable{}
	b := &countingDisposable{}

	bag := cells.NewBag(a, b)
	bag.Remove(a)
	bag.Dispose()

	assert.Equal(t, 0, a.disposed)
	assert.Equal(t, 1, b.disposed)
}

func TestBagReusableAfterDispose(t *testing.T) {
	bag := cells.NewBag()
	bag.Dispose()

	c := &countingDisposable{}
	bag.Add(c)
	bag.Dispose()
	assert.Equal(t, 1, c.disposed)
}

func TestScopedDisposesOnReturn(t *testing.T) {
	c := cells.NewCell(1)

	notified := 0
	cells.Scoped(func(bag *cells.Bag) {
		bag.Add(cells.OnRefresh(c, func() { notified++ }))
		c.Set(2)
	})

	require.Equal(t, 1, notified)
	c.Set(3)
	assert.Equal(t, 1, notified)
}

func TestScopedDisposesOnPanic(t *testing.T) {
	d := &countingDisposable{}

	assert.Panics(t, func() {
		cells.Scoped(func(bag *cells.Bag) {
			bag.Add(d)
			panic("boom")
		})
	})
	assert.Equal(t, 1, d.disposed)
}
