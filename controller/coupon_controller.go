// api/controller/coupon_controller.go
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

type CouponController struct {
	couponService service.ICouponService
}

func NewCouponController(couponService service.ICouponService) *CouponController {
	return &CouponController{
		couponService: couponService,
	}
}

// RegisterRoutes registers the API routes
func (cc *CouponController) RegisterRoutes(r *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	payments := r.Group("/payments")
	{
		payments.POST("/coupon/new", adminOnly, cc.CreateCoupon)
		payments.GET("/discount", cc.ApplyDiscount)
		payments.GET("/coupon/all", adminOnly, cc.AllCoupons)
		payments.DELETE("/coupon/:id", adminOnly, cc.DeleteCoupon)
	}
}

// CreateCoupon endpoint
func (cc *CouponController) CreateCoupon(c *gin.Context) {
	var coupon model.Coupon
	if err := c.ShouldBindJSON(&coupon); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid coupon data", shopora_errors.ErrInvalidCouponData)
		return
	}

	createdCoupon, err := cc.couponService.CreateCoupon(c, coupon)
	if err != nil {
		switch {
		case errors.Is(err, shopora_errors.ErrCouponConflict):
			util.RespondWithError(c, http.StatusConflict, "Coupon code already exists", err)
		case errors.Is(err, shopora_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusBadRequest, "Failed to create coupon", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "coupon": createdCoupon})
}

// ApplyDiscount endpoint
func (cc *CouponController) ApplyDiscount(c *gin.Context) {
	code := c.Query("coupon")
	if code == "" {
		util.RespondWithError(c, http.StatusBadRequest, "Missing coupon code", shopora_errors.ErrInvalidCouponData)
		return
	}

	discount, err := cc.couponService.ApplyDiscount(c, code)
	if err != nil {
		if errors.Is(err, shopora_errors.ErrCouponNotFound) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid coupon code", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to apply discount", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "discount": discount})
}

// AllCoupons endpoint
func (cc *CouponController) AllCoupons(c *gin.Context) {
	coupons, err := cc.couponService.AllCoupons(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve coupons", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "coupons": coupons})
}

// DeleteCoupon endpoint
func (cc *CouponController) DeleteCoupon(c *gin.Context) {
	couponID := c.Param("id")

	if err := cc.couponService.DeleteCoupon(c, couponID); err != nil {
		if errors.Is(err, shopora_errors.ErrCouponNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Coupon not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete coupon", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Coupon deleted successfully"})
}
