package cells_test

import (
	"testing"

	"github.com/cellwire/cellwire/cells"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func even(v int) bool { return v%2 == 0 }

// even-only filter seeded from 4
func TestFilterEvenOnly(t *testing.T) {
	c := cells.NewCell(4)
	evens := cells.Filter(c, cells.Observed, even)

	notified := 0
	sub := cells.OnRefresh(evens, func() { notified++ })
	defer sub.Dispose()

	assert.Equal(t, 4, evens.Value())

	c.Set(5)
	assert.Equal(t, 4, evens.Value())
	assert.Equal(t, 0, notified)

	c.Set(6)
	assert.Equal(t, 6, evens.Value())
	assert.Equal(t, 1, notified)
}

// the initial cache is seeded even when the seed fails the predicate
func TestFilterSeedsRejectedValue(t *testing.T) {
	c := cells.NewCell(3)
	evens := cells.Filter(c, cells.Observed, even)

	assert.Equal(t, 3, evens.Value())

	c.Set(5)
	assert.Equal(t, 3, evens.Value())

	c.Set(8)
	assert.Equal(t, 8, evens.Value())
}

// the view can stay stale for arbitrarily long while rejections continue
func TestFilterStaysStaleUnderRejection(t *testing.T) {
	c := cells.NewCell(2)
	evens := cells.Filter(c, cells.Observed, even)

	for v := 3; v < 20; v += 2 {
		c.Set(v)
	}
	assert.Equal(t, 2, evens.Value())
	assert.Equal(t, 19, c.Value())
}

func TestFilterAccessAfterDispose(t *testing.T) {
	c := cells.NewCell(2)
	evens := cells.Filter(c, cells.Observed, even)

	evens.Dispose()
	require.PanicsWithError(t, "FilteredView: access after dispose", func() {
		evens.Value()
	})
	assert.NotPanics(t, evens.Dispose)
}

func TestFilterOwnedDisposesSource(t *testing.T) {
	c := cells.NewCell(2)
	mapped := cells.Map(c, cells.Observed, func(v int) int { return v })
	evens := cells.Filter(mapped, cells.Owned, even)

	evens.Dispose()
	require.PanicsWithError(t, "MappedView: access after dispose", func() {
		mapped.Value()
	})
}
