// Package controller gin handlers for the blog HTTP API.
package controller

import (
	"context"
	"os"

	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"

	"github.com/inkwell-blog/inkwell/internal/web/blog/dao"
	"github.com/inkwell-blog/inkwell/internal/web/blog/model"
	"github.com/inkwell-blog/inkwell/internal/web/blog/service"
	"github.com/inkwell-blog/inkwell/library/jwt"
	"github.com/inkwell-blog/inkwell/library/log"
)

// Type controller for the blog API.
type Type struct {
	svc *service.Blog
	jwt *jwt.JWT
}

// Instance global controller, set by Initialize.
var Instance *Type

// New create a controller from an already initialized service.
func New(svc *service.Blog, j *jwt.JWT) *Type {
	return &Type{
		svc: svc,
		jwt: j,
	}
}

// Initialize connect to the database and wire dao, service and token
// signer together. Panics on any failure, the server cannot run without
// these.
func Initialize(ctx context.Context) {
	model.Initialize(ctx)

	d := dao.New(log.Logger.Named("blog_dao"), model.BlogDB)
	cfg := service.NewConfigFromSettings()

	svc, err := service.New(ctx, log.Logger.Named("blog_svc"), d, cfg)
	if err != nil {
		log.Logger.Panic("new blog service", zap.Error(err))
	}

	if err = os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Logger.Panic("create upload dir",
			zap.String("dir", cfg.UploadDir), zap.Error(err))
	}

	j, err := jwt.New([]byte(gconfig.Shared.GetString("settings.secret")))
	if err != nil {
		log.Logger.Panic("new jwt", zap.Error(err))
	}

	Instance = New(svc, j)
}

// Service expose the underlying service, used by commands sharing the
// controller wiring.
func (c *Type) Service() *service.Blog {
	return c.svc
}
