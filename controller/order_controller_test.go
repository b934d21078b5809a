// api/controller/order_controller_test.go
package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/shopora/api/controller"
	shopora_errors "github.com/shopora/api/errors"
	logger "github.com/shopora/api/logging"
	"github.com/shopora/api/model"
)

type fakeOrderService struct {
	order  *model.Order
	orders []model.Order
	err    error
}

func (f *fakeOrderService) PlaceOrder(_ context.Context, order model.Order) (*model.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	order.ID = "o1"
	return &order, nil
}

func (f *fakeOrderService) MyOrders(context.Context, string) ([]model.Order, error) {
	return f.orders, f.err
}

func (f *fakeOrderService) AllOrders(context.Context) ([]model.Order, error) {
	return f.orders, f.err
}

func (f *fakeOrderService) GetOrder(context.Context, string) (*model.Order, error) {
	return f.order, f.err
}

func (f *fakeOrderService) ProcessOrder(context.Context, string) (*model.Order, error) {
	return f.order, f.err
}

func (f *fakeOrderService) DeleteOrder(context.Context, string) error {
	return f.err
}

func setupOrderRouter(orders *fakeOrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/")
	controller.NewOrderController(orders).RegisterRoutes(api, allowAll)
	return r
}

func TestOrderController(t *testing.T) {
	// Initialize logger
	logger.InitLogger("../logging")
	defer logger.Sync()

	t.Run("PlaceOrder_Success", func(t *testing.T) {
		router := setupOrderRouter(&fakeOrderService{})

		body := strings.NewReader(`{"user_id":"u1","total":120,"order_items":[{"product_id":"p1","quantity":2}]}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/orders/new", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
	})

	t.Run("PlaceOrder_Failure_InvalidData", func(t *testing.T) {
		router := setupOrderRouter(&fakeOrderService{err: shopora_errors.ErrInvalidOrderData})

		body := strings.NewReader(`{"user_id":"u1"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/orders/new", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("PlaceOrder_Failure_InsufficientStock", func(t *testing.T) {
		router := setupOrderRouter(&fakeOrderService{err: shopora_errors.ErrInsufficientStock})

		body := strings.NewReader(`{"user_id":"u1","order_items":[{"product_id":"p1","quantity":999}]}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/orders/new", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("GetOrder_Success", func(t *testing.T) {
		router := setupOrderRouter(&fakeOrderService{order: &model.Order{ID: "o1"}})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/orders/o1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetOrder_Failure_NotFound", func(t *testing.T) {
		router := setupOrderRouter(&fakeOrderService{err: shopora_errors.ErrOrderNotFound})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/orders/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("MyOrders_Success", func(t *testing.T) {
		router := setupOrderRouter(&fakeOrderService{orders: []model.Order{{ID: "o1"}}})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/orders/my?id=u1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ProcessOrder_Success", func(t *testing.T) {
		router := setupOrderRouter(&fakeOrderService{order: &model.Order{ID: "o1", Status: model.OrderStatusShipped}})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/orders/o1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), model.OrderStatusShipped)
	})

	t.Run("DeleteOrder_Success", func(t *testing.T) {
		router := setupOrderRouter(&fakeOrderService{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/orders/o1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("DeleteOrder_Failure_NotFound", func(t *testing.T) {
		router := setupOrderRouter(&fakeOrderService{err: shopora_errors.ErrOrderNotFound})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/orders/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
