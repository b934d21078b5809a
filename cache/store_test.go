// api/cache/store_test.go
package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopora/api/cache"
	"github.com/shopora/api/model"
)

func TestStore(t *testing.T) {
	t.Run("GetMissingKey", func(t *testing.T) {
		store := cache.NewStore()

		_, ok := store.Get("absent")
		assert.False(t, ok)
		assert.False(t, store.Has("absent"))
	})

	t.Run("SetAndGet", func(t *testing.T) {
		store := cache.NewStore()
		stats := &model.DashboardStats{Count: model.CountSummary{Order: 3}}

		store.Set(cache.KeyAdminStats, stats)

		got, ok := store.Get(cache.KeyAdminStats)
		assert.True(t, ok)
		assert.Same(t, stats, got)
	})

	t.Run("SetOverwrites", func(t *testing.T) {
		store := cache.NewStore()
		store.Set("k", 1)
		store.Set("k", 2)

		got, ok := store.Get("k")
		assert.True(t, ok)
		assert.Equal(t, 2, got)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("DeleteIsIdempotent", func(t *testing.T) {
		store := cache.NewStore()
		store.Set("a", 1)
		store.Set("b", 2)

		store.Delete("a", "absent")
		store.Delete("a")

		assert.False(t, store.Has("a"))
		assert.True(t, store.Has("b"))
	})

	t.Run("LookupWrongTypeIsMiss", func(t *testing.T) {
		store := cache.NewStore()
		store.Set(cache.KeyAdminStats, "not stats")

		_, ok := cache.Lookup[*model.DashboardStats](store, cache.KeyAdminStats)
		assert.False(t, ok)

		s, ok := cache.Lookup[string](store, cache.KeyAdminStats)
		assert.True(t, ok)
		assert.Equal(t, "not stats", s)
	})

	t.Run("ConcurrentAccess", func(t *testing.T) {
		store := cache.NewStore()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				store.Set(cache.KeyAllOrders, []model.Order{{ID: "o1"}})
			}()
			go func() {
				defer wg.Done()
				store.Get(cache.KeyAllOrders)
				store.Delete(cache.KeyAllOrders)
			}()
		}
		wg.Wait()
	})
}
