package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yeisme/immovault/pkg/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server and the retention sweep scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.NewApp(configPath).Run()
	},
}
