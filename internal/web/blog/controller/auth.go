package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	jwtLib "github.com/golang-jwt/jwt/v5"

	"github.com/inkwell-blog/inkwell/internal/web/blog/dto"
	"github.com/inkwell-blog/inkwell/library/jwt"
)

// Login POST /api/auth/login. Issues a bearer token for a valid
// email/password pair. The response never reveals whether the email or
// the password was the wrong half.
func (c *Type) Login(ctx *gin.Context) {
	req := &dto.LoginRequest{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		abortBadRequest(ctx, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest,
			gin.H{"error": "Email and password required"})
		return
	}

	admin, err := c.svc.ValidateLogin(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortErr(ctx, maskLoginError(err))
		return
	}

	token, err := c.jwt.Sign(&jwt.AdminClaims{
		RegisteredClaims: jwtLib.RegisteredClaims{
			Subject: admin.GetID(),
		},
		Email: admin.Email,
	})
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"email": admin.Email,
	})
}

// Register POST /api/auth/register. Bootstrap endpoint gated by the
// shared setup token, creates an editor account.
func (c *Type) Register(ctx *gin.Context) {
	req := &dto.RegisterRequest{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		abortBadRequest(ctx, err)
		return
	}

	admin, err := c.svc.Register(ctx.Request.Context(),
		req.Email, req.Password, req.SetupToken)
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":    admin.GetID(),
		"email": admin.Email,
	})
}

// Me GET /api/me. Identity of the calling admin.
func (c *Type) Me(ctx *gin.Context) {
	admin := CurrentAdmin(ctx)
	if admin == nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized,
			gin.H{"error": "Unauthorized"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":    admin.GetID(),
		"email": admin.Email,
		"role":  admin.Role,
	})
}
