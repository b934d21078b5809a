// api/controller/user_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	shopora_errors "github.com/shopora/api/errors"
	"github.com/shopora/api/model"
	"github.com/shopora/api/service"
	"github.com/shopora/api/util"
)

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterRoutes registers the API routes
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	users := r.Group("/users")
	{
		users.POST("/new", uc.UpsertUser)
		users.GET("/all", adminOnly, uc.AllUsers)
		users.GET("/:id", uc.GetUser)
		users.DELETE("/:id", adminOnly, uc.DeleteUser)
	}
}

// UpsertUser endpoint
func (uc *UserController) UpsertUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", shopora_errors.ErrInvalidUserData)
		return
	}

	upsertedUser, created, err := uc.userService.UpsertUser(c, user)
	if err != nil {
		if errors.Is(err, shopora_errors.ErrDatabaseOperation) {
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		} else {
			util.RespondWithError(c, http.StatusBadRequest, "Failed to create user", err)
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"success": true, "message": fmt.Sprintf("Welcome, %s", upsertedUser.Name)})
}

// AllUsers endpoint
func (uc *UserController) AllUsers(c *gin.Context) {
	users, err := uc.userService.AllUsers(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

// GetUser endpoint
func (uc *UserController) GetUser(c *gin.Context) {
	userID := c.Param("id")

	user, err := uc.userService.GetUser(c, userID)
	if err != nil {
		if errors.Is(err, shopora_errors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve user", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// DeleteUser endpoint
func (uc *UserController) DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	if err := uc.userService.DeleteUser(c, userID); err != nil {
		if errors.Is(err, shopora_errors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}
