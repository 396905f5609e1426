package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yeisme/immovault/pkg/configs"
	"github.com/yeisme/immovault/pkg/internal/model"
	"github.com/yeisme/immovault/pkg/internal/storage"
	"github.com/yeisme/immovault/pkg/log"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := configs.InitConfig(configPath); err != nil {
			return err
		}

		mgr, err := storage.Init(cmd.Context())
		if err != nil {
			return err
		}

		if err := model.AutoMigrate(mgr.GetDBClient().GetDB()); err != nil {
			return err
		}

		log.Logger().Info().Msg("migration done")

		return nil
	},
}
