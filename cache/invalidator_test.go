// api/cache/invalidator_test.go
package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopora/api/cache"
	"github.com/shopora/api/model"
)

func seedStore() *cache.Store {
	store := cache.NewStore()
	store.Set(cache.KeyAdminStats, &model.DashboardStats{})
	store.Set(cache.KeyAdminPieCharts, &model.PieCharts{})
	store.Set(cache.KeyAdminBarCharts, &model.BarCharts{})
	store.Set(cache.KeyAdminLineCharts, &model.LineCharts{})
	store.Set(cache.KeyAllOrders, []model.Order{{ID: "o1"}})
	store.Set(cache.KeyLatestProducts, []model.Product{{ID: "p1"}})
	store.Set(cache.KeyCategories, []string{"shoes"})
	store.Set(cache.OrderKey("o1"), model.Order{ID: "o1"})
	store.Set(cache.MyOrdersKey("u1"), []model.Order{{ID: "o1"}})
	store.Set(cache.ProductKey("p1"), model.Product{ID: "p1"})
	return store
}

func assertAdminKeysDropped(t *testing.T, store *cache.Store) {
	t.Helper()
	assert.False(t, store.Has(cache.KeyAdminStats))
	assert.False(t, store.Has(cache.KeyAdminPieCharts))
	assert.False(t, store.Has(cache.KeyAdminBarCharts))
	assert.False(t, store.Has(cache.KeyAdminLineCharts))
}

func TestInvalidator(t *testing.T) {
	t.Run("OrderChanged", func(t *testing.T) {
		store := seedStore()
		inv := cache.NewInvalidator(store)

		inv.Invalidate(model.OrderChanged{OrderID: "o1", UserID: "u1"})

		assertAdminKeysDropped(t, store)
		assert.False(t, store.Has(cache.KeyAllOrders))
		assert.False(t, store.Has(cache.OrderKey("o1")))
		assert.False(t, store.Has(cache.MyOrdersKey("u1")))

		// Product-side entries are untouched by an order mutation.
		assert.True(t, store.Has(cache.KeyLatestProducts))
		assert.True(t, store.Has(cache.KeyCategories))
		assert.True(t, store.Has(cache.ProductKey("p1")))
	})

	t.Run("ProductChanged", func(t *testing.T) {
		store := seedStore()
		inv := cache.NewInvalidator(store)

		inv.Invalidate(model.ProductChanged{ProductIDs: []string{"p1", "p2"}})

		assertAdminKeysDropped(t, store)
		assert.False(t, store.Has(cache.KeyLatestProducts))
		assert.False(t, store.Has(cache.KeyCategories))
		assert.False(t, store.Has(cache.ProductKey("p1")))

		assert.True(t, store.Has(cache.KeyAllOrders))
		assert.True(t, store.Has(cache.OrderKey("o1")))
	})

	t.Run("UserChangedDropsOnlyAdminBundles", func(t *testing.T) {
		store := seedStore()
		inv := cache.NewInvalidator(store)

		inv.Invalidate(model.UserChanged{UserID: "u1"})

		assertAdminKeysDropped(t, store)
		assert.True(t, store.Has(cache.KeyAllOrders))
		assert.True(t, store.Has(cache.KeyLatestProducts))
		assert.True(t, store.Has(cache.MyOrdersKey("u1")))
	})

	t.Run("OrderChangedWithoutUserID", func(t *testing.T) {
		store := seedStore()
		inv := cache.NewInvalidator(store)

		inv.Invalidate(model.OrderChanged{OrderID: "o1"})

		assert.False(t, store.Has(cache.OrderKey("o1")))
		assert.True(t, store.Has(cache.MyOrdersKey("u1")))
	})

	t.Run("InvalidateIsIdempotent", func(t *testing.T) {
		store := seedStore()
		inv := cache.NewInvalidator(store)

		event := model.OrderChanged{OrderID: "o1", UserID: "u1"}
		inv.Invalidate(event)
		inv.Invalidate(event)

		assert.False(t, store.Has(cache.KeyAllOrders))
	})

	t.Run("MultipleEventsInOneCall", func(t *testing.T) {
		store := seedStore()
		inv := cache.NewInvalidator(store)

		inv.Invalidate(
			model.OrderChanged{OrderID: "o1", UserID: "u1"},
			model.ProductChanged{ProductIDs: []string{"p1"}},
		)

		assert.False(t, store.Has(cache.KeyAllOrders))
		assert.False(t, store.Has(cache.KeyLatestProducts))
		assert.False(t, store.Has(cache.ProductKey("p1")))
	})

	t.Run("RecomputeAfterInvalidate", func(t *testing.T) {
		store := seedStore()
		inv := cache.NewInvalidator(store)

		inv.Invalidate(model.OrderChanged{OrderID: "o1", UserID: "u1"})

		// A subsequent miss repopulates and the entry is served again.
		fresh := &model.DashboardStats{Count: model.CountSummary{Order: 9}}
		store.Set(cache.KeyAdminStats, fresh)

		got, ok := cache.Lookup[*model.DashboardStats](store, cache.KeyAdminStats)
		assert.True(t, ok)
		assert.Same(t, fresh, got)
	})
}
