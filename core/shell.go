package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/josephlewis42/rush/commands"
	"github.com/josephlewis42/rush/core/config"
	"github.com/josephlewis42/rush/core/logger"
	"github.com/josephlewis42/rush/core/shell"
	"github.com/josephlewis42/rush/core/view"
	"github.com/josephlewis42/rush/core/vos"
)

// ExitCommand ends an interactive session.
const ExitCommand = "exit"

// ShellOptions holds the collaborators of a Shell.
type ShellOptions struct {
	VOS      vos.VOS
	Registry *commands.Registry
	Config   *config.Configuration
	Logger   *slog.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// IsTerminal reports whether the output is a terminal, nil means it isn't.
	IsTerminal func() bool
	// GetWidth reports the width of the terminal.
	GetWidth func() int
}

// Shell reads lines, runs them as pipelines and displays the results.
type Shell struct {
	VirtualOS vos.VOS
	Registry  *commands.Registry
	Readline  *readline.Instance

	config     *config.Configuration
	log        *slog.Logger
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	isTerminal func() bool
	getWidth   func() int
	color      bool
	location   *time.Location

	lastRet int

	// Set to true to quit the shell
	Quit bool
}

// NewShell creates a shell and indexes the programs on $PATH.
func NewShell(opts ShellOptions) (*Shell, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	loc, err := cfg.TimeLocation()
	if err != nil {
		return nil, err
	}

	s := &Shell{
		VirtualOS:  opts.VOS,
		Registry:   opts.Registry,
		config:     cfg,
		log:        opts.Logger,
		stdin:      opts.Stdin,
		stdout:     opts.Stdout,
		stderr:     opts.Stderr,
		isTerminal: opts.IsTerminal,
		getWidth:   opts.GetWidth,
		location:   loc,
	}

	if s.Registry == nil {
		s.Registry = commands.DefaultRegistry()
	}
	if s.log == nil {
		s.log = logger.NewNop()
	}
	if s.isTerminal == nil {
		s.isTerminal = func() bool { return false }
	}
	if s.getWidth == nil {
		s.getWidth = func() int { return 80 }
	}
	s.color = cfg.UseColor(s.isTerminal())

	count := s.Registry.RefreshExternals(s.VirtualOS)
	s.log.Debug("indexed external programs", "count", count)

	return s, nil
}

// Execute parses, resolves, runs and renders a single line.
func (s *Shell) Execute(ctx context.Context, line string) error {
	pipeline, err := shell.ParseLine(line)
	if err != nil {
		return err
	}

	runner := &Runner{
		VOS:          s.VirtualOS,
		Stdin:        s.stdin,
		Stdout:       s.stdout,
		Stderr:       s.stderr,
		Logger:       s.log,
		TimeLocation: s.location,
	}

	stages := ResolvePipeline(s.Registry, pipeline)
	result, err := runner.Run(ctx, stages)
	if err != nil {
		return err
	}

	s.lastRet = result.ExitCode
	if result.External {
		if result.ExitCode != 0 && s.config.WarnExitStatus {
			last := stages[len(stages)-1]
			fmt.Fprintf(s.stderr, "rush: %s exited with status %d\n", last.stageName(), result.ExitCode)
		}
		return nil
	}

	return view.Fprint(s.stdout, result.Value, view.Options{
		Color:    s.color,
		Location: s.location,
	})
}

// RunLine handles one line of input. Blank lines are ignored, "exit" ends the
// session, and errors are reported without stopping the shell.
func (s *Shell) RunLine(ctx context.Context, line string) {
	trimmed := strings.TrimSpace(line)
	switch trimmed {
	case "":
		return
	case ExitCommand:
		s.Quit = true
		return
	}

	if err := s.Execute(ctx, trimmed); err != nil {
		s.lastRet = 1
		if IsSyntaxError(err) {
			s.log.Debug("syntax error", "line", trimmed, "error", err)
		} else {
			s.log.Info("command failed", "line", trimmed, "error", err)
		}
		fmt.Fprintf(s.stderr, "rush: %v\n", err)
	}
}

// RunCommand runs a single line non-interactively and returns the exit status.
func (s *Shell) RunCommand(ctx context.Context, line string) int {
	s.lastRet = 0
	s.RunLine(ctx, line)
	return s.lastRet
}

// RunInteractive reads and runs lines until "exit" or end of input.
func (s *Shell) RunInteractive(ctx context.Context) int {
	if s.Readline == nil {
		rl, err := s.newReadline()
		if err != nil {
			fmt.Fprintf(s.stderr, "rush: %v\n", err)
			return 1
		}
		s.Readline = rl
		defer rl.Close()
	}

	for !s.Quit {
		fmt.Fprintln(s.stdout, s.promptHeader())
		s.Readline.SetPrompt(s.promptSymbol())
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			return 0 // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears line.
			continue

		case err != nil:
			s.log.Error("reading line", "error", err)
			fmt.Fprintf(s.stderr, "rush: %v\n", err)
			return 1

		default:
			s.RunLine(ctx, line)
		}
	}
	return 0
}

func (s *Shell) newReadline() (*readline.Instance, error) {
	cfg := &readline.Config{
		Prompt:         s.promptSymbol(),
		Stdin:          readline.NewCancelableStdin(s.stdin),
		Stdout:         s.stdout,
		Stderr:         s.stderr,
		HistoryFile:    s.config.HistoryPath(),
		HistoryLimit:   s.config.HistoryLimit,
		AutoComplete:   &completer{registry: s.Registry},
		FuncGetWidth:   s.getWidth,
		FuncIsTerminal: s.isTerminal,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	return readline.NewEx(cfg)
}

func (s *Shell) paint(c *color.Color, text string) string {
	if s.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

// promptHeader is the line printed above the prompt, the name of the working
// directory.
func (s *Shell) promptHeader() string {
	return s.paint(color.New(color.FgCyan, color.Bold), filepath.Base(s.VirtualOS.Getwd()))
}

func (s *Shell) promptSymbol() string {
	return s.paint(color.New(color.FgGreen, color.Bold), s.config.PromptSymbol) + " "
}

// completer completes command names at the start of each pipeline stage.
type completer struct {
	registry *commands.Registry
}

var _ readline.AutoCompleter = (*completer)(nil)

func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	head := string(line[:pos])
	start := strings.LastIndexAny(head, " \t|") + 1
	word := head[start:]

	before := strings.TrimSpace(head[:start])
	if before != "" && !strings.HasSuffix(before, "|") {
		return nil, 0
	}

	var out [][]rune
	for _, name := range c.registry.CommandsWithPrefix(word) {
		out = append(out, []rune(name[len(word):]+" "))
	}
	return out, utf8.RuneCountInString(word)
}

// IsSyntaxError reports whether err came from parsing the line.
func IsSyntaxError(err error) bool {
	var parseErr *shell.ParseError
	return errors.As(err, &parseErr) || errors.Is(err, shell.ErrEmptyPipeline)
}
