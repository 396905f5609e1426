package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yeisme/immovault/pkg/configs"
	ctxPkg "github.com/yeisme/immovault/pkg/context"
	"github.com/yeisme/immovault/pkg/internal/jobs"
	"github.com/yeisme/immovault/pkg/internal/storage"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run one retention sweep of the trash and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := configs.InitConfig(configPath); err != nil {
			return err
		}

		mgr, err := storage.Init(cmd.Context())
		if err != nil {
			return err
		}

		ctx := ctxPkg.WithStorageManager(cmd.Context(), mgr)
		jobs.RunRetentionSweep(ctx)

		return nil
	},
}
