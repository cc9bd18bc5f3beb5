package stream_test

import (
	"testing"

	"github.com/cellwire/cellwire/cells"
	"github.com/cellwire/cellwire/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the value present at subscribe time is never replayed
func TestFromViewDeliversOnlyFutureChanges(t *testing.T) {
	c := cells.NewCell(42)
	s := stream.FromView[int](c)

	var got []int
	sub := s.Subscribe(func(v int) { got = append(got, v) })
	defer sub.Dispose()

	assert.Empty(t, got)

	c.Set(7)
	assert.Equal(t, []int{7}, got)
}

func TestFromViewOverDerivedNode(t *testing.T) {
	c := cells.NewCell(1)
	doubled := cells.Map(c, cells.Observed, func(v int) int { return v * 2 })

	var got []int
	sub := stream.FromView[int](doubled).Subscribe(func(v int) { got = append(got, v) })
	defer sub.Dispose()

	c.Set(3)
	c.Set(4)
	assert.Equal(t, []int{6, 8}, got)
}

func TestFromViewUnsubscribe(t *testing.T) {
	c := cells.NewCell(0)

	var got []int
	sub := stream.FromView[int](c).Subscribe(func(v int) { got = append(got, v) })

	c.Set(1)
	sub.Dispose()
	c.Set(2)
	assert.NotPanics(t, sub.Dispose)

	assert.Equal(t, []int{1}, got)
}

func TestIntoCellSeedAndEmissions(t *testing.T) {
	em := stream.NewEmitter[int]()
	view, handle := stream.IntoCell(1, em)
	defer handle.Dispose()

	require.Equal(t, 1, view.Value())

	em.Emit(99)
	assert.Equal(t, 99, view.Value())
}

// equality gating applies to stream writes like any other Set
func TestIntoCellSuppressesEqualEmissions(t *testing.T) {
	em := stream.NewEmitter[int]()
	view, handle := stream.IntoCell(5, em)
	defer handle.Dispose()

	notified := 0
	sub := cells.OnRefresh(view, func() { notified++ })
	defer sub.Dispose()

	em.Emit(5)
	assert.Equal(t, 0, notified)

	em.Emit(6)
	assert.Equal(t, 1, notified)
}

// disposing the handle stops updates; the cell keeps its last value
func TestIntoCellDisposeStopsUpdates(t *testing.T) {
	em := stream.NewEmitter[int]()
	view, handle := stream.IntoCell(0, em)

	em.Emit(10)
	handle.Dispose()
	em.Emit(20)

	assert.Equal(t, 10, view.Value())
}

// an end-to-end round trip: stream in, graph transform, stream out
func TestBridgeRoundTrip(t *testing.T) {
	in := stream.NewEmitter[int]()
	view, handle := stream.IntoCell(0, in)
	defer handle.Dispose()

	doubled := cells.Map(view, cells.Observed, func(v int) int { return v * 2 })

	var got []int
	sub := stream.FromView[int](doubled).Subscribe(func(v int) { got = append(got, v) })
	defer sub.Dispose()

	in.Emit(1)
	in.Emit(2)
	in.Emit(2)

	assert.Equal(t, []int{2, 4}, got)
}
