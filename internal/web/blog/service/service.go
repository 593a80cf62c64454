// Package service business logic for the blog publishing platform.
package service

import (
	"context"
	"time"

	"github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	glog "github.com/Laisky/go-utils/v6/log"

	"github.com/inkwell-blog/inkwell/internal/web/blog/dao"
	"github.com/inkwell-blog/inkwell/internal/web/blog/model"
)

const defaultWatchdogInterval = 30 * time.Second

// SeedConfig designates the protected admin account maintained by the
// seed-repair process.
type SeedConfig struct {
	Email            string
	Password         string
	Role             model.AdminRole
	WatchdogInterval time.Duration
}

// Enabled reports whether a seeded admin is configured at all.
func (c SeedConfig) Enabled() bool {
	return c.Email != "" && c.Password != ""
}

// Config runtime settings for the blog service, built once at startup.
type Config struct {
	// SetupToken shared secret gating the public bootstrap endpoints.
	SetupToken string
	Seed       SeedConfig
	// UploadDir directory uploaded blobs are written to.
	UploadDir string
}

// NewConfigFromSettings builds the service config from loaded settings.
func NewConfigFromSettings() Config {
	cfg := Config{
		SetupToken: gconfig.Shared.GetString("settings.setup_token"),
		Seed: SeedConfig{
			Email:            gconfig.Shared.GetString("settings.seed.email"),
			Password:         gconfig.Shared.GetString("settings.seed.password"),
			Role:             model.RoleMaster,
			WatchdogInterval: gconfig.Shared.GetDuration("settings.seed.watchdog_interval"),
		},
		UploadDir: gconfig.Shared.GetString("settings.upload.dir"),
	}

	if role := gconfig.Shared.GetString("settings.seed.role"); role != "" {
		cfg.Seed.Role = model.ParseAdminRole(role)
	}
	if cfg.Seed.WatchdogInterval <= 0 {
		cfg.Seed.WatchdogInterval = defaultWatchdogInterval
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}

	return cfg
}

// Blog service type
type Blog struct {
	logger glog.Logger
	dao    *dao.Blog
	cfg    Config
}

// New create new service and prepare the backing collections.
func New(ctx context.Context, logger glog.Logger, d *dao.Blog, cfg Config) (*Blog, error) {
	s := &Blog{
		logger: logger,
		dao:    d,
		cfg:    cfg,
	}

	if err := d.EnsureIndexes(ctx); err != nil {
		return nil, errors.Wrap(err, "ensure indexes")
	}

	return s, nil
}

// UploadDir directory uploaded blobs are written to.
func (s *Blog) UploadDir() string {
	return s.cfg.UploadDir
}
