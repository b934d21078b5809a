package errors

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrderData  = errors.New("invalid order data")
	ErrInsufficientStock = errors.New("insufficient product stock")
	ErrOrderLocked       = errors.New("order is locked by another operation")
)
