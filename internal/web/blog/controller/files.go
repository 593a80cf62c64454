package controller

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/inkwell-blog/inkwell/internal/web/blog/model"
	"github.com/inkwell-blog/inkwell/internal/web/blog/service"
)

// requestOrigin reconstructs the scheme://host the client used, so stored
// file URLs stay valid behind a proxy that forwards the Host header.
func requestOrigin(ctx *gin.Context) string {
	scheme := "http"
	if ctx.Request.TLS != nil ||
		ctx.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s", scheme, ctx.Request.Host)
}

// Upload POST /api/upload. Accepts one multipart file under the "file"
// field, writes it into the upload directory under a collision-resistant
// name and records its metadata.
func (c *Type) Upload(ctx *gin.Context) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest,
			gin.H{"error": "No file provided"})
		return
	}

	filename := service.UploadFilename(fh.Filename)
	dst := filepath.Join(c.svc.UploadDir(), filename)
	if err = ctx.SaveUploadedFile(fh, dst); err != nil {
		abortErr(ctx, errors.Wrapf(err, "save upload %q", filename))
		return
	}

	file, err := c.svc.CreateFile(ctx.Request.Context(), &model.File{
		Filename:     filename,
		OriginalName: fh.Filename,
		MimeType:     fh.Header.Get("Content-Type"),
		Size:         fh.Size,
		Path:         dst,
		URL:          fmt.Sprintf("%s/uploads/%s", requestOrigin(ctx), filename),
	})
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, file)
}

// ListFiles GET /api/files. The most recent uploads, capped server-side.
func (c *Type) ListFiles(ctx *gin.Context) {
	files, err := c.svc.ListFiles(ctx.Request.Context())
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, files)
}

// GetFile GET /api/files/:id. Metadata only, the blob itself is served
// from /uploads.
func (c *Type) GetFile(ctx *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		abortErr(ctx, errors.WithStack(model.ErrNotFound))
		return
	}

	file, err := c.svc.LoadFileByID(ctx.Request.Context(), oid)
	if err != nil {
		abortErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, file)
}
