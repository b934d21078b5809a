// api/router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopora/api/controller"
	"github.com/shopora/api/middleware"
	"github.com/shopora/api/service"
)

func SetupRouter(
	controllers *controller.Controllers,
	services *service.Services,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))

	adminOnly := middleware.AdminOnly(services.User)

	api := router.Group("/api/v1")

	controllers.Order.RegisterRoutes(api, adminOnly)
	controllers.Product.RegisterRoutes(api, adminOnly)
	controllers.User.RegisterRoutes(api, adminOnly)
	controllers.Coupon.RegisterRoutes(api, adminOnly)
	controllers.Dashboard.RegisterRoutes(api, adminOnly)
	controllers.Audit.RegisterRoutes(api, adminOnly)

	return router
}
