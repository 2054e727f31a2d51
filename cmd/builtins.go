package cmd

import (
	"fmt"
	"strings"

	"github.com/josephlewis42/rush/commands"
	"github.com/spf13/cobra"
)

// builtinsCmd lists the built-in commands
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the built-in commands of the shell.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, entry := range commands.ListBuiltinCommands() {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(entry.Names, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
