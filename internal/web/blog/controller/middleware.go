package controller

import (
	"net/http"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/inkwell-blog/inkwell/internal/web/blog/model"
)

// ctxKeyAdmin gin context key holding the authenticated admin.
const ctxKeyAdmin = "blog_admin"

// bearerToken extract the token from an "Authorization: Bearer xxx" header.
func bearerToken(ctx *gin.Context) (string, bool) {
	header := ctx.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// RequireAuth verify the bearer token and load the matching admin. Tokens
// whose admin has been deleted since signing are rejected, deleting an
// account revokes its sessions.
func (c *Type) RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw, ok := bearerToken(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := c.jwt.Verify(raw)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"error": "Invalid token"})
			return
		}

		oid, err := primitive.ObjectIDFromHex(claims.Subject)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"error": "Invalid token"})
			return
		}

		admin, err := c.svc.LoadAdminByID(ctx.Request.Context(), oid)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized,
					gin.H{"error": "Unauthorized"})
				return
			}

			abortErr(ctx, err)
			return
		}

		ctx.Set(ctxKeyAdmin, admin)
		ctx.Next()
	}
}

// RequireMaster gate a route to master admins. Must run after RequireAuth.
func (c *Type) RequireMaster() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		admin := CurrentAdmin(ctx)
		if admin == nil || !admin.IsMaster() {
			ctx.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"error": model.ErrForbidden.Error()})
			return
		}

		ctx.Next()
	}
}

// CurrentAdmin fetch the admin stored by RequireAuth, nil when absent.
func CurrentAdmin(ctx *gin.Context) *model.Admin {
	v, ok := ctx.Get(ctxKeyAdmin)
	if !ok {
		return nil
	}

	admin, ok := v.(*model.Admin)
	if !ok {
		return nil
	}

	return admin
}
