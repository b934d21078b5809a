// api/middleware/admin_auth_test.go
package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	shopora_errors "github.com/shopora/api/errors"
	logger "github.com/shopora/api/logging"
	"github.com/shopora/api/middleware"
	"github.com/shopora/api/model"
)

type fakeUserService struct {
	user *model.User
	err  error
}

func (f *fakeUserService) UpsertUser(_ context.Context, user model.User) (*model.User, bool, error) {
	return &user, false, f.err
}

func (f *fakeUserService) GetUser(context.Context, string) (*model.User, error) {
	return f.user, f.err
}

func (f *fakeUserService) AllUsers(context.Context) ([]model.User, error) {
	return nil, f.err
}

func (f *fakeUserService) DeleteUser(context.Context, string) error {
	return f.err
}

func setupGuardedRouter(users *fakeUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", middleware.AdminOnly(users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestAdminOnly(t *testing.T) {
	// Initialize logger
	logger.InitLogger("../logging")
	defer logger.Sync()

	t.Run("AdminPassesThrough", func(t *testing.T) {
		router := setupGuardedRouter(&fakeUserService{user: &model.User{ID: "u1", Role: model.RoleAdmin}})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/guarded?id=u1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("MissingID", func(t *testing.T) {
		router := setupGuardedRouter(&fakeUserService{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/guarded", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		router := setupGuardedRouter(&fakeUserService{err: shopora_errors.ErrUserNotFound})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/guarded?id=ghost", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("NonAdmin", func(t *testing.T) {
		router := setupGuardedRouter(&fakeUserService{user: &model.User{ID: "u2", Role: model.RoleUser}})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/guarded?id=u2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("LookupFailure", func(t *testing.T) {
		router := setupGuardedRouter(&fakeUserService{err: shopora_errors.ErrDatabaseOperation})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/guarded?id=u1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
