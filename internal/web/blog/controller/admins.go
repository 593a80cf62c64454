package controller

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/inkwell-blog/inkwell/internal/web/blog/dto"
	"github.com/inkwell-blog/inkwell/internal/web/blog/model"
	"github.com/inkwell-blog/inkwell/internal/web/blog/service"
)

// ListAdmins GET /api/admins. Any authenticated admin may see the roster.
func (c *Type) ListAdmins(ctx *gin.Context) {
	admins, err := c.svc.ListAdmins(ctx.Request.Context())
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, admins)
}

// CreateAdmin POST /api/admins. Master only, enforced by RequireMaster.
func (c *Type) CreateAdmin(ctx *gin.Context) {
	req := &dto.CreateAdminRequest{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		abortBadRequest(ctx, err)
		return
	}
	if req.Email == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest,
			gin.H{"error": "Email required"})
		return
	}

	admin, err := c.svc.CreateAdmin(ctx.Request.Context(),
		req.Email, req.Password, model.ParseAdminRole(req.Role))
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, admin)
}

// DeleteAdmin DELETE /api/admins/:id. The service enforces the seeded
// protection and the master-role requirement, in that order.
func (c *Type) DeleteAdmin(ctx *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		abortErr(ctx, errors.WithStack(model.ErrNotFound))
		return
	}

	if err = c.svc.DeleteAdmin(ctx.Request.Context(), CurrentAdmin(ctx), oid); err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// EnsureSeed POST /api/admins/ensure-seed. Public repair endpoint gated by
// the setup token; body shape reports what the repair did.
func (c *Type) EnsureSeed(ctx *gin.Context) {
	req := &dto.EnsureSeedRequest{}
	// body is optional, a missing one just fails the token check
	_ = ctx.ShouldBindJSON(req)

	if err := c.svc.CheckSetupToken(req.SetupToken); err != nil {
		abortErr(ctx, err)
		return
	}

	result, err := c.svc.EnsureSeedAdmin(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrSeedNotConfigured) {
			ctx.AbortWithStatusJSON(http.StatusBadRequest,
				gin.H{"error": "Seed env vars missing"})
			return
		}

		abortErr(ctx, err)
		return
	}

	switch {
	case result.Created:
		ctx.JSON(http.StatusOK, gin.H{
			"created": true, "email": result.Email, "role": result.Role})
	case result.Promoted:
		ctx.JSON(http.StatusOK, gin.H{
			"promoted": true, "email": result.Email, "role": result.Role})
	default:
		ctx.JSON(http.StatusOK, gin.H{
			"ok": true, "email": result.Email, "role": result.Role})
	}
}
