package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	limit, offset := GetPaginationParams(contextWithQuery(""))
	assert.Equal(t, DefaultPageLimit, limit)
	assert.Equal(t, 0, offset)

	limit, offset = GetPaginationParams(contextWithQuery("limit=25&offset=75"))
	assert.Equal(t, 25, limit)
	assert.Equal(t, 75, offset)

	// Capped at the max page size.
	limit, _ = GetPaginationParams(contextWithQuery("limit=5000"))
	assert.Equal(t, MaxPageLimit, limit)

	// Garbage falls back to defaults.
	limit, offset = GetPaginationParams(contextWithQuery("limit=abc&offset=-3"))
	assert.Equal(t, DefaultPageLimit, limit)
	assert.Equal(t, 0, offset)
}
