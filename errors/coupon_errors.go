package errors

import "errors"

var (
	ErrCouponNotFound    = errors.New("coupon not found")
	ErrCouponConflict    = errors.New("coupon code already exists")
	ErrInvalidCouponData = errors.New("invalid coupon data")
)
