package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/josephlewis42/rush/core/shell"
	"github.com/spf13/cobra"
)

var lexParse bool

// lexCmd shows how a line is tokenized and parsed
var lexCmd = &cobra.Command{
	Use:   "lex LINE...",
	Short: "Print the tokens of a line, and optionally the parsed pipeline.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		line := strings.Join(args, " ")

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		for _, tok := range shell.Lex(line) {
			fmt.Fprintf(w, "%s\t%s\n", tok.Span, tok.Token)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if !lexParse {
			return nil
		}

		pipeline, err := shell.ParseLine(line)
		if err != nil {
			return err
		}
		for i, c := range pipeline.Commands {
			var quoted []string
			for _, arg := range c.Args {
				quoted = append(quoted, fmt.Sprintf("%q", arg.String()))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stage %d: %s [%s]\n", i, c.Name, strings.Join(quoted, ", "))
		}
		return nil
	},
}

func init() {
	lexCmd.Flags().BoolVarP(&lexParse, "parse", "p", false, "also parse the line")
	rootCmd.AddCommand(lexCmd)
}
