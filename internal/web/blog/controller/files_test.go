package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRequestOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	ctx.Request.Host = "blog.example.com"
	require.Equal(t, "http://blog.example.com", requestOrigin(ctx))

	ctx.Request.Header.Set("X-Forwarded-Proto", "https")
	require.Equal(t, "https://blog.example.com", requestOrigin(ctx))
}
