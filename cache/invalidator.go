package cache

import (
	"github.com/shopora/api/model"
)

// Invalidator drops every cache entry a committed mutation may have
// staled. Deletion is conservative: dropping a key that did not need it
// only costs a recomputation on the next read, but keeping a key whose
// backing data changed would serve stale aggregates as fresh.
//
// Callers must invalidate after the write has committed and before
// acknowledging the client. Invalidating before the commit would let a
// concurrent reader repopulate an entry from pre-mutation data.
type Invalidator struct {
	store *Store
}

func NewInvalidator(store *Store) *Invalidator {
	return &Invalidator{store: store}
}

// Invalidate applies the deletion rules for each event. It never
// fails: deleting an absent key is defined as success, so invalidating
// the same event twice is harmless.
func (inv *Invalidator) Invalidate(events ...model.MutationEvent) {
	for _, event := range events {
		switch e := event.(type) {
		case model.OrderChanged:
			keys := []string{KeyAllOrders}
			if e.OrderID != "" {
				keys = append(keys, OrderKey(e.OrderID))
			}
			if e.UserID != "" {
				keys = append(keys, MyOrdersKey(e.UserID))
			}
			inv.store.Delete(keys...)
		case model.ProductChanged:
			keys := []string{KeyLatestProducts, KeyCategories}
			for _, id := range e.ProductIDs {
				keys = append(keys, ProductKey(id))
			}
			inv.store.Delete(keys...)
		case model.UserChanged:
			// Users only feed the admin aggregates below.
		}

		// All four admin bundles aggregate across orders, products and
		// users, so any mutation variant invalidates them.
		inv.store.Delete(adminKeys...)
	}
}
