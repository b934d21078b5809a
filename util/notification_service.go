// api/util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/shopora/api/logging"
	"github.com/shopora/api/model"
)

type NotificationService struct {
	// You might want to add dependencies here, such as a message queue client
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyOrderChange(ctx context.Context, changeType string, order model.Order) error {
	switch changeType {
	case "placed":
		logger.Info("NOTIFICATION: Order placed",
			zap.String("orderID", order.ID),
			zap.String("userID", order.UserID))
	case "status":
		logger.Info("NOTIFICATION: Order status updated",
			zap.String("orderID", order.ID),
			zap.String("status", order.Status))
	case "deleted":
		logger.Info("NOTIFICATION: Order deleted",
			zap.String("orderID", order.ID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) NotifyProductChange(ctx context.Context, changeType string, product model.Product) error {
	logger.Info("Notifying product change",
		zap.String("changeType", changeType),
		zap.String("productID", product.ID),
		zap.String("productName", product.Name))
	return nil
}

func (n *NotificationService) NotifyUserChange(ctx context.Context, changeType string, user model.User) error {
	logger.Info("Notifying user change",
		zap.String("changeType", changeType),
		zap.String("userID", user.ID),
		zap.String("userName", user.Name))
	return nil
}

func (n *NotificationService) NotifyLowStock(ctx context.Context, product model.Product) error {
	logger.Info("Notifying low stock",
		zap.String("productID", product.ID),
		zap.Int("stock", product.Stock))
	return nil
}
