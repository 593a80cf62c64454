package cmd

import (
	"context"

	gcmd "github.com/Laisky/go-utils/v6/cmd"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	blog "github.com/inkwell-blog/inkwell/internal/web/blog/controller"
	"github.com/inkwell-blog/inkwell/library/log"
)

// seedCMD one-shot seed repair. Unlike the watchdog it also resets the
// seeded admin's password to the configured one.
var seedCMD = &cobra.Command{
	Use:   "seed",
	Short: "create or repair the seeded admin, then exit",
	Args:  gcmd.NoExtraArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		if err := initialize(ctx, cmd); err != nil {
			log.Logger.Panic("init", zap.Error(err))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		result, err := blog.Instance.Service().ResetSeedAdmin(ctx)
		if err != nil {
			log.Logger.Panic("reset seed admin", zap.Error(err))
		}

		log.Logger.Info("seed admin ready",
			zap.String("email", result.Email),
			zap.String("role", string(result.Role)),
			zap.Bool("created", result.Created),
			zap.Bool("promoted", result.Promoted),
		)
	},
}

func init() {
	rootCMD.AddCommand(seedCMD)
}
