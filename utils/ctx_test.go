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
	assert.Zero(t, CurrentUserID(c), "no session means zero")

	c.Set("userId", uint(42))
	assert.Equal(t, uint(42), CurrentUserID(c))

	c.Set("userId", "not-a-uint")
	assert.Zero(t, CurrentUserID(c))
}
