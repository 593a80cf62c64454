// Package web gin server
package web

import (
	"net/http"

	gmw "github.com/Laisky/gin-middlewares/v7"
	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/inkwell-blog/inkwell/internal/web/blog/controller"
	"github.com/inkwell-blog/inkwell/library/log"
)

var server = gin.New()

// RunServer mount every route and serve until the listener fails.
func RunServer(addr string, ctl *controller.Type) {
	server.Use(
		gin.Recovery(),
		gmw.NewLoggerMiddleware(
			gmw.WithLoggerMwColored(),
			gmw.WithLevel(log.Logger.Level().String()),
			gmw.WithLogger(log.Logger.Named("gin")),
		),
		cors.Default(),
	)
	if !gconfig.Shared.GetBool("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := gmw.EnableMetric(server); err != nil {
		log.Logger.Panic("enable metric server", zap.Error(err))
	}

	server.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true, "msg": "Backend running"})
	})
	server.Any("/health", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world")
	})

	mountAPI(ctl)

	log.Logger.Info("listening on http", zap.String("addr", addr))
	log.Logger.Panic("httpServer exit", zap.Error(server.Run(addr)))
}

func mountAPI(ctl *controller.Type) {
	api := server.Group("/api")

	api.POST("/auth/login", ctl.Login)
	api.POST("/auth/register", ctl.Register)
	api.GET("/me", ctl.RequireAuth(), ctl.Me)

	api.GET("/admins", ctl.RequireAuth(), ctl.ListAdmins)
	api.POST("/admins", ctl.RequireAuth(), ctl.RequireMaster(), ctl.CreateAdmin)
	api.POST("/admins/ensure-seed", ctl.EnsureSeed)
	api.DELETE("/admins/:id", ctl.RequireAuth(), ctl.DeleteAdmin)

	api.GET("/articles", ctl.ListArticles)
	api.GET("/articles/:id", ctl.GetArticle)
	api.GET("/articles/slug/:slug", ctl.GetArticleBySlug)
	api.POST("/articles", ctl.RequireAuth(), ctl.CreateArticle)
	api.PUT("/articles/:id", ctl.RequireAuth(), ctl.UpdateArticle)
	api.DELETE("/articles/:id", ctl.RequireAuth(), ctl.DeleteArticle)

	api.POST("/upload", ctl.Upload)
	api.GET("/files", ctl.ListFiles)
	api.GET("/files/:id", ctl.GetFile)

	server.Static("/uploads", ctl.Service().UploadDir())
}
