// api/controller/controllers.go
package controller

import (
	"github.com/shopora/api/audit"
	"github.com/shopora/api/service"
)

type Controllers struct {
	Order     *OrderController
	Product   *ProductController
	User      *UserController
	Coupon    *CouponController
	Dashboard *DashboardController
	Audit     *AuditController
}

func InitializeControllers(services *service.Services, auditService audit.Service) *Controllers {
	return &Controllers{
		Order:     NewOrderController(services.Order),
		Product:   NewProductController(services.Product),
		User:      NewUserController(services.User),
		Coupon:    NewCouponController(services.Coupon),
		Dashboard: NewDashboardController(services.Stats),
		Audit:     NewAuditController(auditService),
	}
}
