// api/controller/order_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	shopora_errors "github.com/shopora/api/errors"
	"github.com/shopora/api/model"
	"github.com/shopora/api/service"
	"github.com/shopora/api/util"
)

type OrderController struct {
	orderService service.IOrderService
}

func NewOrderController(orderService service.IOrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

// RegisterRoutes registers the API routes
func (oc *OrderController) RegisterRoutes(r *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	orders := r.Group("/orders")
	{
		orders.POST("/new", oc.PlaceOrder)
		orders.GET("/my", oc.MyOrders)
		orders.GET("/all", adminOnly, oc.AllOrders)
		orders.GET("/:id", oc.GetOrder)
		orders.PUT("/:id", adminOnly, oc.ProcessOrder)
		orders.DELETE("/:id", adminOnly, oc.DeleteOrder)
	}
}

// PlaceOrder endpoint
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var order model.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid order data", shopora_errors.ErrInvalidOrderData)
		return
	}

	placedOrder, err := oc.orderService.PlaceOrder(c, order)
	if err != nil {
		switch {
		case errors.Is(err, shopora_errors.ErrInsufficientStock):
			util.RespondWithError(c, http.StatusConflict, "Insufficient product stock", err)
		case errors.Is(err, shopora_errors.ErrProductNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Ordered product not found", err)
		case errors.Is(err, shopora_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusBadRequest, "Failed to place order", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "order": placedOrder})
}

// MyOrders endpoint
func (oc *OrderController) MyOrders(c *gin.Context) {
	userID := c.Query("id")
	if userID == "" {
		util.RespondWithError(c, http.StatusBadRequest, "Missing user id", shopora_errors.ErrInvalidOrderData)
		return
	}

	orders, err := oc.orderService.MyOrders(c, userID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// AllOrders endpoint
func (oc *OrderController) AllOrders(c *gin.Context) {
	orders, err := oc.orderService.AllOrders(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// GetOrder endpoint
func (oc *OrderController) GetOrder(c *gin.Context) {
	orderID := c.Param("id")

	order, err := oc.orderService.GetOrder(c, orderID)
	if err != nil {
		if errors.Is(err, shopora_errors.ErrOrderNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Order not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve order", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// ProcessOrder endpoint
func (oc *OrderController) ProcessOrder(c *gin.Context) {
	orderID := c.Param("id")

	order, err := oc.orderService.ProcessOrder(c, orderID)
	if err != nil {
		switch {
		case errors.Is(err, shopora_errors.ErrOrderNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Order not found", err)
		case errors.Is(err, shopora_errors.ErrOrderLocked):
			util.RespondWithError(c, http.StatusConflict, "Order is being processed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update order status", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// DeleteOrder endpoint
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	orderID := c.Param("id")

	if err := oc.orderService.DeleteOrder(c, orderID); err != nil {
		if errors.Is(err, shopora_errors.ErrOrderNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Order not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete order", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted successfully"})
}
