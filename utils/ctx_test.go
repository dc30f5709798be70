package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Zero(t, CurrentUserID(c), "no identity set yet")

	c.Set("userId", uint(7))
	assert.Equal(t, uint(7), CurrentUserID(c))

	// anything but the uint the middleware stores is unauthenticated
	c.Set("userId", "7")
	assert.Zero(t, CurrentUserID(c))
}

func TestCurrentRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, CurrentRole(c))

	c.Set("role", "cashier")
	assert.Equal(t, "cashier", CurrentRole(c))
}
