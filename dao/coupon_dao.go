package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/shopora/api/audit"
	shopora_errors "github.com/shopora/api/errors"
	logger "github.com/shopora/api/logging"
	"github.com/shopora/api/model"
)

type CouponDAO struct {
	Collection   *mongo.Collection
	AuditService audit.Service
}

func NewCouponDAO(database *mongo.Database, auditService audit.Service) *CouponDAO {
	return &CouponDAO{
		Collection:   database.Collection("coupons"),
		AuditService: auditService,
	}
}

func (dao *CouponDAO) CreateCoupon(ctx context.Context, coupon model.Coupon) (string, error) {
	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
	}

	if _, err := dao.Collection.InsertOne(ctx, coupon); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", shopora_errors.ErrCouponConflict
		}
		logger.Error("Failed to create coupon", zap.Error(err), zap.String("code", coupon.Code))
		return "", shopora_errors.ErrDatabaseOperation
	}

	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		Action:     "CREATE_COUPON",
		ResourceID: coupon.ID,
	}
	if err := dao.AuditService.LogAction(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}

	return coupon.ID, nil
}

func (dao *CouponDAO) GetCouponByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := dao.Collection.FindOne(ctx, bson.M{"code": code}).Decode(&coupon)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, shopora_errors.ErrCouponNotFound
	}
	if err != nil {
		logger.Error("Failed to get coupon", zap.Error(err), zap.String("code", code))
		return nil, shopora_errors.ErrDatabaseOperation
	}
	return &coupon, nil
}

func (dao *CouponDAO) AllCoupons(ctx context.Context) ([]model.Coupon, error) {
	cursor, err := dao.Collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Error("Failed to query coupons", zap.Error(err))
		return nil, shopora_errors.ErrDatabaseOperation
	}
	var coupons []model.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, shopora_errors.ErrDatabaseOperation
	}
	return coupons, nil
}

func (dao *CouponDAO) DeleteCoupon(ctx context.Context, couponID string) error {
	result, err := dao.Collection.DeleteOne(ctx, bson.M{"_id": couponID})
	if err != nil {
		logger.Error("Failed to delete coupon", zap.Error(err), zap.String("couponID", couponID))
		return shopora_errors.ErrDatabaseOperation
	}
	if result.DeletedCount == 0 {
		return shopora_errors.ErrCouponNotFound
	}

	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		Action:     "DELETE_COUPON",
		ResourceID: couponID,
	}
	if err := dao.AuditService.LogAction(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}

	return nil
}
