package cmd

import (
	"context"

	gconfig "github.com/Laisky/go-config/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/inkwell-blog/inkwell/internal/web"
	blog "github.com/inkwell-blog/inkwell/internal/web/blog/controller"
	"github.com/inkwell-blog/inkwell/internal/web/blog/service"
	"github.com/inkwell-blog/inkwell/library/log"
)

var apiCMD = &cobra.Command{
	Use:   "api",
	Short: "api",
	Long:  `blog publishing API service`,
	Args:  gcmd.NoExtraArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		if err := initialize(ctx, cmd); err != nil {
			log.Logger.Panic("init", zap.Error(err))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := blog.Instance.Service()
		cfg := service.NewConfigFromSettings()

		if cfg.Seed.Enabled() {
			if result, err := svc.EnsureSeedAdmin(ctx); err != nil {
				log.Logger.Error("ensure seed admin", zap.Error(err))
			} else if result.Created {
				log.Logger.Info("seeded admin", zap.String("email", result.Email))
			}

			watchdog := service.NewSeedWatchdog(
				log.Logger.Named("seed_watchdog"), svc, cfg.Seed.WatchdogInterval)
			if err := watchdog.Start(); err != nil {
				log.Logger.Panic("start seed watchdog", zap.Error(err))
			}
			defer watchdog.Stop()
		}

		web.RunServer(gconfig.Shared.GetString("listen"), blog.Instance)
	},
}

func init() {
	rootCMD.AddCommand(apiCMD)
}
