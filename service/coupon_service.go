// api/service/coupon_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/shopora/api/logging"
	"github.com/shopora/api/model"
	"github.com/shopora/api/util"
)

// ICouponService defines the interface for coupon operations
type ICouponService interface {
	CreateCoupon(ctx context.Context, coupon model.Coupon) (*model.Coupon, error)
	ApplyDiscount(ctx context.Context, code string) (float64, error)
	AllCoupons(ctx context.Context) ([]model.Coupon, error)
	DeleteCoupon(ctx context.Context, couponID string) error
}

// CouponStore is the slice of the coupon DAO the service reads and
// writes through.
type CouponStore interface {
	CreateCoupon(ctx context.Context, coupon model.Coupon) (string, error)
	GetCouponByCode(ctx context.Context, code string) (*model.Coupon, error)
	AllCoupons(ctx context.Context) ([]model.Coupon, error)
	DeleteCoupon(ctx context.Context, couponID string) error
}

// CouponService handles coupon lifecycle. Coupons feed no aggregate,
// so no cache invalidation happens here.
type CouponService struct {
	couponStore    CouponStore
	validationUtil *util.ValidationUtil
}

var _ ICouponService = &CouponService{}

func NewCouponService(couponStore CouponStore, validationUtil *util.ValidationUtil) *CouponService {
	return &CouponService{
		couponStore:    couponStore,
		validationUtil: validationUtil,
	}
}

func (s *CouponService) CreateCoupon(ctx context.Context, coupon model.Coupon) (*model.Coupon, error) {
	if err := s.validationUtil.ValidateCoupon(coupon); err != nil {
		return nil, fmt.Errorf("invalid coupon: %w", err)
	}

	couponID, err := s.couponStore.CreateCoupon(ctx, coupon)
	if err != nil {
		logger.Error("Error creating coupon", zap.Error(err), zap.String("code", coupon.Code))
		return nil, err
	}
	coupon.ID = couponID

	logger.Info("Coupon created successfully", zap.String("couponID", couponID))
	return &coupon, nil
}

func (s *CouponService) ApplyDiscount(ctx context.Context, code string) (float64, error) {
	coupon, err := s.couponStore.GetCouponByCode(ctx, code)
	if err != nil {
		return 0, err
	}
	return coupon.Amount, nil
}

func (s *CouponService) AllCoupons(ctx context.Context) ([]model.Coupon, error) {
	return s.couponStore.AllCoupons(ctx)
}

func (s *CouponService) DeleteCoupon(ctx context.Context, couponID string) error {
	if err := s.couponStore.DeleteCoupon(ctx, couponID); err != nil {
		logger.Error("Error deleting coupon", zap.Error(err), zap.String("couponID", couponID))
		return err
	}
	logger.Info("Coupon deleted successfully", zap.String("couponID", couponID))
	return nil
}
