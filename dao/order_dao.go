package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/shopora/api/audit"
	shopora_errors "github.com/shopora/api/errors"
	logger "github.com/shopora/api/logging"
	"github.com/shopora/api/model"
)

type OrderDAO struct {
	Collection   *mongo.Collection
	AuditService audit.Service
}

func NewOrderDAO(database *mongo.Database, auditService audit.Service) *OrderDAO {
	return &OrderDAO{
		Collection:   database.Collection("orders"),
		AuditService: auditService,
	}
}

func (dao *OrderDAO) CreateOrder(ctx context.Context, order model.Order) (string, error) {
	start := time.Now()
	logger.Info("Creating new order", zap.String("userID", order.UserID))

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Status == "" {
		order.Status = model.OrderStatusProcessing
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt

	if _, err := dao.Collection.InsertOne(ctx, order); err != nil {
		logger.Error("Failed to create order",
			zap.Error(err),
			zap.String("userID", order.UserID),
			zap.Duration("duration", time.Since(start)))
		return "", shopora_errors.ErrDatabaseOperation
	}

	logger.Info("Order created successfully",
		zap.String("orderID", order.ID),
		zap.Duration("duration", time.Since(start)))

	// Audit trail
	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		UserID:     order.UserID,
		Action:     "CREATE_ORDER",
		ResourceID: order.ID,
	}
	if err := dao.AuditService.LogAction(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}

	return order.ID, nil
}

func (dao *OrderDAO) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := dao.Collection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, shopora_errors.ErrOrderNotFound
	}
	if err != nil {
		logger.Error("Failed to get order", zap.Error(err), zap.String("orderID", orderID))
		return nil, shopora_errors.ErrDatabaseOperation
	}
	return &order, nil
}

// SaveOrder fully replaces the stored document, matching the
// read-modify-save flow of the status transition handler.
func (dao *OrderDAO) SaveOrder(ctx context.Context, order *model.Order) error {
	order.UpdatedAt = time.Now()
	result, err := dao.Collection.ReplaceOne(ctx, bson.M{"_id": order.ID}, order)
	if err != nil {
		logger.Error("Failed to save order", zap.Error(err), zap.String("orderID", order.ID))
		return shopora_errors.ErrDatabaseOperation
	}
	if result.MatchedCount == 0 {
		return shopora_errors.ErrOrderNotFound
	}

	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		UserID:     order.UserID,
		Action:     "UPDATE_ORDER",
		ResourceID: order.ID,
	}
	if err := dao.AuditService.LogAction(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}

	return nil
}

func (dao *OrderDAO) DeleteOrder(ctx context.Context, orderID string) error {
	result, err := dao.Collection.DeleteOne(ctx, bson.M{"_id": orderID})
	if err != nil {
		logger.Error("Failed to delete order", zap.Error(err), zap.String("orderID", orderID))
		return shopora_errors.ErrDatabaseOperation
	}
	if result.DeletedCount == 0 {
		return shopora_errors.ErrOrderNotFound
	}

	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		Action:     "DELETE_ORDER",
		ResourceID: orderID,
	}
	if err := dao.AuditService.LogAction(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}

	return nil
}

func (dao *OrderDAO) OrdersByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return dao.find(ctx, bson.M{"user": userID})
}

func (dao *OrderDAO) AllOrders(ctx context.Context) ([]model.Order, error) {
	return dao.find(ctx, bson.M{})
}

func (dao *OrderDAO) OrdersCreatedBetween(ctx context.Context, from, to time.Time) ([]model.Order, error) {
	return dao.find(ctx, bson.M{"createdAt": bson.M{"$gte": from, "$lte": to}})
}

func (dao *OrderDAO) LatestOrders(ctx context.Context, limit int) ([]model.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := dao.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error("Failed to list latest orders", zap.Error(err))
		return nil, shopora_errors.ErrDatabaseOperation
	}
	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, shopora_errors.ErrDatabaseOperation
	}
	return orders, nil
}

func (dao *OrderDAO) CountOrdersByStatus(ctx context.Context, status string) (int64, error) {
	count, err := dao.Collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		logger.Error("Failed to count orders by status", zap.Error(err), zap.String("status", status))
		return 0, shopora_errors.ErrDatabaseOperation
	}
	return count, nil
}

func (dao *OrderDAO) find(ctx context.Context, filter bson.M) ([]model.Order, error) {
	cursor, err := dao.Collection.Find(ctx, filter)
	if err != nil {
		logger.Error("Failed to query orders", zap.Error(err))
		return nil, shopora_errors.ErrDatabaseOperation
	}
	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, shopora_errors.ErrDatabaseOperation
	}
	return orders, nil
}
