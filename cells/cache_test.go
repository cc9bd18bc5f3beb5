package cells_test

import (
	"runtime"
	"testing"

	"github.com/cellwire/cellwire/cells"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheTracksSource(t *testing.T) {
	c := cells.NewCell(5)
	cached := cells.Cache[int](c)

	assert.Equal(t, 5, cached.Value())
	c.Set(6)
	assert.Equal(t, 6, cached.Value())
}

// a cache refresh forwards one signal to its own dependents
func TestCacheForwardsRefresh(t *testing.T) {
	c := cells.NewCell(1)
	cached := cells.Cache[int](c)

	notified := 0
	sub := cells.OnRefresh(cached, func() { notified++ })
	defer sub.Dispose()

	c.Set(2)
	assert.Equal(t, 1, notified)
	assert.Equal(t, 2, cached.Value())
}

func TestCacheAccessAfterDispose(t *testing.T) {
	c := cells.NewCell(1)
	cached := cells.Cache[int](c)

	cached.Dispose()
	require.PanicsWithError(t, "CachedView: access after dispose", func() {
		cached.Value()
	})
	assert.NotPanics(t, cached.Dispose)
}

func TestCacheDisposeStopsPropagation(t *testing.T) {
	c := cells.NewCell(1)
	cached := cells.Cache[int](c)

	notified := 0
	sub := cells.OnRefresh(cached, func() { notified++ })
	defer sub.Dispose()

	cached.Dispose()
	c.Set(2)
	assert.Equal(t, 0, notified)
}

// a cache whose source has been collected silently no-ops on refresh and
// dispose, and keeps serving the cached value
func TestCacheSurvivesCollectedSource(t *testing.T) {
	c := cells.NewCell(5)
	mapped := cells.Map(c, cells.Observed, func(v int) int { return v * 10 })
	cached := cells.Cache[int](mapped)
	require.Equal(t, 50, cached.Value())

	mapped = nil
	_ = mapped
	for i := 0; i < 4; i++ {
		runtime.GC()
	}

	assert.NotPanics(t, func() { cached.Refresh() })
	assert.Equal(t, 50, cached.Value())
	assert.NotPanics(t, cached.Dispose)
}
