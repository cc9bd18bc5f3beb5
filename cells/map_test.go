package cells_test

import (
	"testing"

	"github.com/cellwire/cellwire/cells"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapBasic(t *testing.T) {
	c := cells.NewCell(1)
	doubled := cells.Map(c, cells.Observed, func(v int) int { return v * 2 })

	assert.Equal(t, 2, doubled.Value())
	c.Set(2)
	assert.Equal(t, 4, doubled.Value())
}

// the mapping function runs on read, never on refresh
func TestMapIsLazy(t *testing.T) {
	c := cells.NewCell(1)

	calls := 0
	mapped := cells.Map(c, cells.Observed, func(v int) int {
		calls++
		return v + 1
	})

	assert.Equal(t, 0, calls)
	c.Set(2)
	c.Set(3)
	assert.Equal(t, 0, calls)

	assert.Equal(t, 4, mapped.Value())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 4, mapped.Value())
	assert.Equal(t, 2, calls)
}

// a refresh from the source is forwarded to the view's own dependents
func TestMapForwardsRefresh(t *testing.T) {
	c := cells.NewCell(1)
	mapped := cells.Map(c, cells.Observed, func(v int) int { return v * 10 })

	notified := 0
	sub := cells.OnRefresh(mapped, func() { notified++ })
	defer sub.Dispose()

	c.Set(2)
	c.Set(3)
	assert.Equal(t, 2, notified)
}

func TestMapChainPropagates(t *testing.T) {
	c := cells.NewCell(2)
	plusOne := cells.Map(c, cells.Observed, func(v int) int { return v + 1 })
	squared := cells.Map(plusOne, cells.Observed, func(v int) int { return v * v })

	assert.Equal(t, 9, squared.Value())
	c.Set(3)
	assert.Equal(t, 16, squared.Value())
}

func TestMapAccessAfterDispose(t *testing.T) {
	c := cells.NewCell(1)
	mapped := cells.Map(c, cells.Observed, func(v int) int { return v })

	mapped.Dispose()
	require.PanicsWithError(t, "MappedView: access after dispose", func() {
		mapped.Value()
	})

	// second dispose is a safe no-op
	assert.NotPanics(t, mapped.Dispose)
}

// a disposed view no longer hears from its source
func TestMapDisposeStopsPropagation(t *testing.T) {
	c := cells.NewCell(1)
	mapped := cells.Map(c, cells.Observed, func(v int) int { return v * 2 })

	notified := 0
	sub := cells.OnRefresh(mapped, func() { notified++ })
	defer sub.Dispose()

	c.Set(2)
	assert.Equal(t, 1, notified)

	mapped.Dispose()
	c.Set(3)
	assert.Equal(t, 1, notified)
}

func TestMapOwnedDisposesSource(t *testing.T) {
	c := cells.NewCell(1)
	inner := cells.Map(c, cells.Observed, func(v int) int { return v + 1 })
	outer := cells.Map(inner, cells.Owned, func(v int) int { return v * 2 })

	outer.Dispose()
	require.PanicsWithError(t, "MappedView: access after dispose", func() {
		inner.Value()
	})
}

func TestMapObservedLeavesSourceAlone(t *testing.T) {
	c := cells.NewCell(1)
	inner := cells.Map(c, cells.Observed, func(v int) int { return v + 1 })
	outer := cells.Map(inner, cells.Observed, func(v int) int { return v * 2 })

	outer.Dispose()
	assert.Equal(t, 2, inner.Value())
}

func TestMap2Basic(t *testing.T) {
	a := cells.NewCell("hello")
	b := cells.NewCell("world")
	joined := cells.Map2(a, b, func(x, y string) string { return x + " " + y })

	assert.Equal(t, "hello world", joined.Value())
	a.Set("goodbye")
	assert.Equal(t, "goodbye world", joined.Value())
	b.Set("moon")
	assert.Equal(t, "goodbye moon", joined.Value())
}

// each inbound refresh forwards independently, no coalescing
func TestMap2ForwardsEachSourceIndependently(t *testing.T) {
	a := cells.NewCell(1)
	b := cells.NewCell(2)
	sum := cells.Map2(a, b, func(x, y int) int { return x + y })

	notified := 0
	sub := cells.OnRefresh(sum, func() { notified++ })
	defer sub.Dispose()

	a.Set(10)
	b.Set(20)
	assert.Equal(t, 2, notified)
	assert.Equal(t, 30, sum.Value())
}

// the two-source combinator never disposes its sources
func TestMap2DisposeObservesOnly(t *testing.T) {
	c := cells.NewCell(1)
	inner := cells.Map(c, cells.Observed, func(v int) int { return v + 1 })
	pair := cells.Map2(inner, c, func(x, y int) int { return x * y })

	pair.Dispose()
	assert.Equal(t, 2, inner.Value())
	require.PanicsWithError(t, "Map2View: access after dispose", func() {
		pair.Value()
	})

	notified := 0
	sub := cells.OnRefresh(pair, func() { notified++ })
	defer sub.Dispose()
	c.Set(5)
	assert.Equal(t, 0, notified)
}
