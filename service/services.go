// api/service/services.go
package service

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopora/api/analytics"
	"github.com/shopora/api/audit"
	"github.com/shopora/api/cache"
	"github.com/shopora/api/dao"
	"github.com/shopora/api/util"
)

type Services struct {
	Order   IOrderService
	Product IProductService
	User    IUserService
	Coupon  ICouponService
	Stats   IStatsService
}

func InitializeServices(
	database *mongo.Database,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheStore *cache.Store,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	orderDAO := dao.NewOrderDAO(database, auditService)
	productDAO := dao.NewProductDAO(database, auditService)
	userDAO := dao.NewUserDAO(database, auditService)
	couponDAO := dao.NewCouponDAO(database, auditService)

	invalidator := cache.NewInvalidator(cacheStore)
	engine := analytics.NewEngine(cacheStore, orderDAO, productDAO, userDAO)

	services := &Services{
		Order:   NewOrderService(orderDAO, productDAO, validationUtil, cacheStore, invalidator, notificationSvc, eventBus),
		Product: NewProductService(productDAO, validationUtil, cacheStore, invalidator, notificationSvc, eventBus),
		User:    NewUserService(userDAO, validationUtil, invalidator, notificationSvc, eventBus),
		Coupon:  NewCouponService(couponDAO, validationUtil),
		Stats:   NewStatsService(engine),
	}

	return services, nil
}
