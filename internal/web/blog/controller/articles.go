package controller

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/inkwell-blog/inkwell/internal/web/blog/dto"
	"github.com/inkwell-blog/inkwell/internal/web/blog/model"
)

// ListArticles GET /api/articles. Public, newest first.
func (c *Type) ListArticles(ctx *gin.Context) {
	articles, err := c.svc.LoadArticles(ctx.Request.Context())
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, articles)
}

// GetArticle GET /api/articles/:id. Malformed ids read as missing.
func (c *Type) GetArticle(ctx *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		abortErr(ctx, errors.WithStack(model.ErrNotFound))
		return
	}

	article, err := c.svc.LoadArticleByID(ctx.Request.Context(), oid)
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, article)
}

// GetArticleBySlug GET /api/articles/slug/:slug.
func (c *Type) GetArticleBySlug(ctx *gin.Context) {
	article, err := c.svc.LoadArticleBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, article)
}

// CreateArticle POST /api/articles. The service assigns a unique slug when
// the caller does not provide one.
func (c *Type) CreateArticle(ctx *gin.Context) {
	req := &dto.ArticleInput{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		abortBadRequest(ctx, err)
		return
	}

	article, err := c.svc.CreateArticle(ctx.Request.Context(), req)
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, article)
}

// UpdateArticle PUT /api/articles/:id. Only the provided fields change.
func (c *Type) UpdateArticle(ctx *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		abortErr(ctx, errors.WithStack(model.ErrNotFound))
		return
	}

	req := &dto.ArticleUpdate{}
	if err = ctx.ShouldBindJSON(req); err != nil {
		abortBadRequest(ctx, err)
		return
	}

	article, err := c.svc.UpdateArticle(ctx.Request.Context(), oid, req)
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, article)
}

// DeleteArticle DELETE /api/articles/:id. Idempotent, deleting a missing
// article still reports ok.
func (c *Type) DeleteArticle(ctx *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	if err = c.svc.DeleteArticle(ctx.Request.Context(), oid); err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
