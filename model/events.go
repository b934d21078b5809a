package model

// MutationEvent describes a write that has already been committed to
// the store, so that every cache entry whose backing data may have
// changed can be dropped. Write paths construct the variant matching
// what they touched; a single write may emit several (placing an order
// also reduces product stock, for example).
type MutationEvent interface {
	mutation()
}

// OrderChanged covers order creation, status transitions and deletion.
// UserID is the order's owner, used to drop that user's order list.
type OrderChanged struct {
	OrderID string
	UserID  string
}

// ProductChanged covers product creation, updates, deletion and stock
// reduction for every listed product ID.
type ProductChanged struct {
	ProductIDs []string
}

// UserChanged covers user creation and deletion.
type UserChanged struct {
	UserID string
}

func (OrderChanged) mutation()   {}
func (ProductChanged) mutation() {}
func (UserChanged) mutation()    {}
