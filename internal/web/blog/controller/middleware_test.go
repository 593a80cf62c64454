package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-blog/inkwell/internal/web/blog/model"
)

func newTestCtx(t *testing.T, header string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	if header != "" {
		ctx.Request.Header.Set("Authorization", header)
	}

	return ctx
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"Bearer   spaced  ", "spaced", true},
		{"bearer abc", "", false},
		{"Basic abc", "", false},
		{"Bearer ", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		ctx := newTestCtx(t, tc.header)
		token, ok := bearerToken(ctx)
		require.Equal(t, tc.ok, ok, "header %q", tc.header)
		require.Equal(t, tc.token, token, "header %q", tc.header)
	}
}

func TestCurrentAdminAbsent(t *testing.T) {
	ctx := newTestCtx(t, "")
	require.Nil(t, CurrentAdmin(ctx))
}

func TestCurrentAdminSet(t *testing.T) {
	ctx := newTestCtx(t, "")
	admin := model.NewAdmin()
	admin.Email = "editor@example.com"
	ctx.Set(ctxKeyAdmin, admin)

	got := CurrentAdmin(ctx)
	require.NotNil(t, got)
	require.Equal(t, "editor@example.com", got.Email)
}

// TestCurrentAdminWrongType guards against a foreign value stored under the
// same context key.
func TestCurrentAdminWrongType(t *testing.T) {
	ctx := newTestCtx(t, "")
	ctx.Set(ctxKeyAdmin, "not an admin")
	require.Nil(t, CurrentAdmin(ctx))
}
