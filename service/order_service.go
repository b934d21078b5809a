// api/service/order_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shopora/api/cache"
	"github.com/shopora/api/db"
	shopora_errors "github.com/shopora/api/errors"
	logger "github.com/shopora/api/logging"
	"github.com/shopora/api/model"
	"github.com/shopora/api/util"
)

// IOrderService defines the interface for order operations
type IOrderService interface {
	PlaceOrder(ctx context.Context, order model.Order) (*model.Order, error)
	MyOrders(ctx context.Context, userID string) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	ProcessOrder(ctx context.Context, orderID string) (*model.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
}

// OrderStore is the slice of the order DAO the service reads and
// writes through.
type OrderStore interface {
	CreateOrder(ctx context.Context, order model.Order) (string, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	SaveOrder(ctx context.Context, order *model.Order) error
	DeleteOrder(ctx context.Context, orderID string) error
	OrdersByUser(ctx context.Context, userID string) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
}

// StockReducer decrements stock for the ordered items.
type StockReducer interface {
	ReduceStock(ctx context.Context, items []model.OrderItem) error
}

// OrderService handles business logic for order operations. Every
// write follows the same sequence: commit to the store, invalidate the
// affected cache keys, then acknowledge. Notifications go out through
// the event bus after that, where ordering no longer matters.
type OrderService struct {
	orderStore      OrderStore
	stockReducer    StockReducer
	validationUtil  *util.ValidationUtil
	cacheStore      *cache.Store
	invalidator     *cache.Invalidator
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IOrderService = &OrderService{}

func NewOrderService(
	orderStore OrderStore,
	stockReducer StockReducer,
	validationUtil *util.ValidationUtil,
	cacheStore *cache.Store,
	invalidator *cache.Invalidator,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *OrderService {
	service := &OrderService{
		orderStore:      orderStore,
		stockReducer:    stockReducer,
		validationUtil:  validationUtil,
		cacheStore:      cacheStore,
		invalidator:     invalidator,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe("order.placed", service.handleOrderPlaced)
	eventBus.Subscribe("order.status", service.handleOrderStatus)
	eventBus.Subscribe("order.deleted", service.handleOrderDeleted)

	return service
}

func (s *OrderService) handleOrderPlaced(ctx context.Context, event util.Event) error {
	order := event.Payload.(model.Order)
	logger.Info("Order placed event received", zap.String("orderID", order.ID))
	return s.notificationSvc.NotifyOrderChange(ctx, "placed", order)
}

func (s *OrderService) handleOrderStatus(ctx context.Context, event util.Event) error {
	order := event.Payload.(model.Order)
	logger.Info("Order status event received",
		zap.String("orderID", order.ID),
		zap.String("status", order.Status))
	return s.notificationSvc.NotifyOrderChange(ctx, "status", order)
}

func (s *OrderService) handleOrderDeleted(ctx context.Context, event util.Event) error {
	order := event.Payload.(model.Order)
	logger.Info("Order deleted event received", zap.String("orderID", order.ID))
	return s.notificationSvc.NotifyOrderChange(ctx, "deleted", order)
}

// PlaceOrder creates the order and reduces stock for each item. Stock
// reduction follows the original flow: it is not transactional with
// the order insert, the store is an external collaborator here.
func (s *OrderService) PlaceOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	if err := s.validationUtil.ValidateOrder(order); err != nil {
		return nil, fmt.Errorf("invalid order: %w", err)
	}

	orderID, err := s.orderStore.CreateOrder(ctx, order)
	if err != nil {
		logger.Error("Error creating order", zap.Error(err), zap.String("userID", order.UserID))
		return nil, err
	}
	order.ID = orderID

	productIDs := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	if err := s.stockReducer.ReduceStock(ctx, order.Items); err != nil {
		logger.Error("Error reducing stock", zap.Error(err), zap.String("orderID", orderID))
		// The order insert committed, and some items' stock may have
		// decremented before the failure. Invalidate everything those
		// partial commits could have staled before reporting the error.
		s.invalidator.Invalidate(
			model.OrderChanged{OrderID: orderID, UserID: order.UserID},
			model.ProductChanged{ProductIDs: productIDs},
		)
		return nil, err
	}

	s.invalidator.Invalidate(
		model.OrderChanged{OrderID: orderID, UserID: order.UserID},
		model.ProductChanged{ProductIDs: productIDs},
	)

	s.eventBus.Publish(ctx, "order.placed", order)

	logger.Info("Order placed successfully", zap.String("orderID", orderID))
	return &order, nil
}

func (s *OrderService) MyOrders(ctx context.Context, userID string) ([]model.Order, error) {
	key := cache.MyOrdersKey(userID)
	if orders, ok := cache.Lookup[[]model.Order](s.cacheStore, key); ok {
		return orders, nil
	}

	orders, err := s.orderStore.OrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.cacheStore.Set(key, orders)
	return orders, nil
}

func (s *OrderService) AllOrders(ctx context.Context) ([]model.Order, error) {
	if orders, ok := cache.Lookup[[]model.Order](s.cacheStore, cache.KeyAllOrders); ok {
		return orders, nil
	}

	orders, err := s.orderStore.AllOrders(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheStore.Set(cache.KeyAllOrders, orders)
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	key := cache.OrderKey(orderID)
	if order, ok := cache.Lookup[*model.Order](s.cacheStore, key); ok {
		return order, nil
	}

	order, err := s.orderStore.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	s.cacheStore.Set(key, order)
	return order, nil
}

// ProcessOrder advances the order one step along
// Processing -> Shipped -> Delivered. The transition is a
// read-modify-write, so the order is locked to keep two concurrent
// requests from skipping a step.
func (s *OrderService) ProcessOrder(ctx context.Context, orderID string) (*model.Order, error) {
	locked, err := db.LockResource(ctx, "order:"+orderID, 10*time.Second)
	if err != nil {
		logger.Error("Error acquiring order lock", zap.Error(err), zap.String("orderID", orderID))
		return nil, err
	}
	if !locked {
		return nil, fmt.Errorf("order %s is being processed: %w", orderID, shopora_errors.ErrOrderLocked)
	}
	defer func() {
		if err := db.UnlockResource(ctx, "order:"+orderID); err != nil {
			logger.Warn("Error releasing order lock", zap.Error(err), zap.String("orderID", orderID))
		}
	}()

	order, err := s.orderStore.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch order.Status {
	case model.OrderStatusProcessing:
		order.Status = model.OrderStatusShipped
	default:
		order.Status = model.OrderStatusDelivered
	}

	if err := s.orderStore.SaveOrder(ctx, order); err != nil {
		logger.Error("Error updating order status", zap.Error(err), zap.String("orderID", orderID))
		return nil, err
	}

	s.invalidator.Invalidate(model.OrderChanged{OrderID: order.ID, UserID: order.UserID})

	s.eventBus.Publish(ctx, "order.status", *order)

	logger.Info("Order status updated successfully",
		zap.String("orderID", orderID),
		zap.String("status", order.Status))
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, orderID string) error {
	order, err := s.orderStore.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if err := s.orderStore.DeleteOrder(ctx, orderID); err != nil {
		logger.Error("Error deleting order", zap.Error(err), zap.String("orderID", orderID))
		return err
	}

	s.invalidator.Invalidate(model.OrderChanged{OrderID: order.ID, UserID: order.UserID})

	s.eventBus.Publish(ctx, "order.deleted", *order)

	logger.Info("Order deleted successfully", zap.String("orderID", orderID))
	return nil
}
