// api/middleware/admin_auth.go

package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	shopora_errors "github.com/shopora/api/errors"
	logger "github.com/shopora/api/logging"
	"github.com/shopora/api/model"
	"github.com/shopora/api/service"
)

// AdminOnly guards admin routes. The caller identifies itself with the
// "id" query parameter; the referenced user must exist and hold the
// admin role.
func AdminOnly(userService service.IUserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("id")
		if userID == "" {
			logger.Warn("Admin route accessed without user id", zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Please login first"})
			c.Abort()
			return
		}

		user, err := userService.GetUser(c, userID)
		if err != nil {
			if errors.Is(err, shopora_errors.ErrUserNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid user id"})
			} else {
				logger.Error("Failed to resolve requesting user", zap.Error(err), zap.String("userId", userID))
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to verify user"})
			}
			c.Abort()
			return
		}

		if user.Role != model.RoleAdmin {
			logger.Warn("Non-admin user attempted admin route",
				zap.String("userId", userID),
				zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Admin access required"})
			c.Abort()
			return
		}

		c.Set("requestingUserID", user.ID)
		c.Next()
	}
}
