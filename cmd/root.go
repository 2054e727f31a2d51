package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/josephlewis42/rush/commands"
	"github.com/josephlewis42/rush/core"
	"github.com/josephlewis42/rush/core/config"
	"github.com/josephlewis42/rush/core/logger"
	"github.com/josephlewis42/rush/core/vos"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgPath     string
	commandLine string
)

func loadConfig() (*config.Configuration, error) {
	return config.Load(cfgPath)
}

// openLogger opens the application log configured in cfg. Logging is disabled
// if the file can't be opened.
func openLogger(cfg *config.Configuration, stderr io.Writer) (*slog.Logger, func()) {
	fd, err := cfg.OpenAppLog()
	if err != nil {
		logger.New(stderr, slog.LevelWarn).Warn("couldn't open log, did you run init?", "error", err)
		return logger.NewNop(), func() {}
	}
	if fd == nil {
		return logger.NewNop(), func() {}
	}
	return logger.New(fd, cfg.SlogLevel()), func() { fd.Close() }
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rush",
	Short: "A shell that pipes structured values",
	Long: `rush is an interactive shell whose built-in commands pass typed records
between pipeline stages instead of text. External programs are run as usual
and can be piped into each other.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log, closeLog := openLogger(cfg, cmd.ErrOrStderr())
		defer closeLog()

		isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
		shell, err := core.NewShell(core.ShellOptions{
			VOS:        vos.NewHostOS(),
			Registry:   commands.DefaultRegistry(),
			Config:     cfg,
			Logger:     log,
			Stdin:      cmd.InOrStdin(),
			Stdout:     cmd.OutOrStdout(),
			Stderr:     cmd.ErrOrStderr(),
			IsTerminal: func() bool { return isTerminal },
			GetWidth:   terminalWidth,
		})
		if err != nil {
			return err
		}

		var exitCode int
		if cmd.Flags().Changed("command") {
			exitCode = shell.RunCommand(cmd.Context(), commandLine)
		} else {
			exitCode = shell.RunInteractive(cmd.Context())
		}

		if exitCode != 0 {
			closeLog()
			os.Exit(exitCode)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultDir(), "config path")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single line and exit")
}
