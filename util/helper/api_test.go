package helper_util

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		limit, offset, err := GetPaginationParams(contextWithQuery(""))
		require.NoError(t, err)
		assert.Equal(t, defaultPageSize, limit)
		assert.Equal(t, 0, offset)
	})

	t.Run("ExplicitValues", func(t *testing.T) {
		limit, offset, err := GetPaginationParams(contextWithQuery("limit=25&offset=50"))
		require.NoError(t, err)
		assert.Equal(t, 25, limit)
		assert.Equal(t, 50, offset)
	})

	t.Run("ClampsOutOfRange", func(t *testing.T) {
		limit, offset, err := GetPaginationParams(contextWithQuery("limit=-3&offset=-7"))
		require.NoError(t, err)
		assert.Equal(t, defaultPageSize, limit)
		assert.Equal(t, 0, offset)

		limit, _, err = GetPaginationParams(contextWithQuery("limit=5000"))
		require.NoError(t, err)
		assert.Equal(t, maxPageSize, limit)
	})

	t.Run("RejectsNonNumeric", func(t *testing.T) {
		_, _, err := GetPaginationParams(contextWithQuery("limit=ten"))
		assert.Error(t, err)

		_, _, err = GetPaginationParams(contextWithQuery("offset=x"))
		assert.Error(t, err)
	})
}
