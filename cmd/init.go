package cmd

import (
	"log/slog"

	"github.com/josephlewis42/rush/core/config"
	"github.com/josephlewis42/rush/core/logger"
	"github.com/spf13/cobra"
)

// initCmd initializes the shell configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to the config path.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		return config.Initialize(cfgPath, logger.New(cmd.ErrOrStderr(), slog.LevelInfo))
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
