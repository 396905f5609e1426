// Package cmd contains the command line applications for the project.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:   "immovault",
		Short: "A real estate listing management service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCmd.RunE(cmd, args)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./", "config file or directory")
	rootCmd.AddCommand(serveCmd, migrateCmd, sweepCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
