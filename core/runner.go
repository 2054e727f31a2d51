package core

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/josephlewis42/rush/commands"
	"github.com/josephlewis42/rush/core/logger"
	"github.com/josephlewis42/rush/core/value"
	"github.com/josephlewis42/rush/core/vos"
)

// Result is the outcome of running a pipeline.
type Result struct {
	// Value is the output of the last built-in, or None for external pipelines.
	Value value.Value
	// ExitCode is the exit status of the last external program.
	ExitCode int
	// External is true if the pipeline ran OS processes.
	External bool
}

// Runner executes resolved pipelines.
type Runner struct {
	VOS vos.VOS

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger       *slog.Logger
	TimeLocation *time.Location
}

func (r *Runner) log() *slog.Logger {
	if r.Logger == nil {
		return logger.NewNop()
	}
	return r.Logger
}

// Run executes the stages in order. Every pair of adjacent stages is checked
// before anything runs: built-ins hand values to built-ins and programs are
// connected to programs with OS pipes. Any other pairing fails with
// *UnsupportedTransportError.
func (r *Runner) Run(ctx context.Context, stages []CommandType) (*Result, error) {
	if len(stages) == 0 {
		return nil, ErrEmptyPipeline
	}

	if err := checkTransports(stages); err != nil {
		return nil, err
	}

	if _, ok := stages[0].(*Internal); ok {
		return r.runInternal(stages)
	}
	return r.runExternal(ctx, stages)
}

func checkTransports(stages []CommandType) error {
	for i := 1; i < len(stages); i++ {
		from, to := stages[i-1], stages[i]
		_, fromInternal := from.(*Internal)
		_, toInternal := to.(*Internal)
		if fromInternal != toInternal {
			return &UnsupportedTransportError{From: from, To: to}
		}
	}
	return nil
}

func (r *Runner) runInternal(stages []CommandType) (*Result, error) {
	in := commands.NoStream()
	var out value.Value = value.None()

	for i, stage := range stages {
		internal := stage.(*Internal)
		r.log().Debug("running built-in", "stage", i, "command", internal.Name)

		v, err := internal.Command.Run(&commands.Args{
			Name:         internal.Name,
			VOS:          r.VOS,
			Args:         internal.Args,
			Input:        in,
			Stdout:       r.Stdout,
			TimeLocation: r.TimeLocation,
		})
		if err != nil {
			r.log().Debug("built-in failed", "stage", i, "command", internal.Name, "error", err)
			return nil, &StageError{Stage: i, Name: internal.Name, Err: err}
		}

		in = commands.InternalStream(v)
		out = v
	}

	return &Result{Value: out}, nil
}

func (r *Runner) runExternal(ctx context.Context, stages []CommandType) (*Result, error) {
	cmds := make([]*exec.Cmd, len(stages))
	for i, stage := range stages {
		ext := stage.(*External)
		path, err := vos.LookPath(r.VOS, ext.Program)
		if err != nil {
			return nil, &SpawnError{Program: ext.Program, Err: err}
		}

		cmd := exec.CommandContext(ctx, path, ext.Args...)
		cmd.Args[0] = ext.Program
		cmd.Dir = r.VOS.Getwd()
		cmd.Env = r.VOS.Environ()
		cmd.Stderr = r.Stderr
		cmds[i] = cmd
	}

	var prevRead *os.File
	for i, cmd := range cmds {
		if i == 0 {
			cmd.Stdin = r.Stdin
		} else {
			cmd.Stdin = prevRead
		}

		var nextRead, write *os.File
		if i == len(cmds)-1 {
			cmd.Stdout = r.Stdout
		} else {
			var err error
			nextRead, write, err = os.Pipe()
			if err != nil {
				closeFile(prevRead)
				abort(cmds[:i])
				return nil, err
			}
			cmd.Stdout = write
		}

		r.log().Debug("starting program", "stage", i, "program", cmd.Path, "args", cmd.Args[1:])
		err := cmd.Start()

		// The child holds its own copies of the pipe ends.
		closeFile(write)
		closeFile(prevRead)

		if err != nil {
			closeFile(nextRead)
			abort(cmds[:i])
			return nil, &SpawnError{Program: cmd.Args[0], Err: err}
		}
		prevRead = nextRead
	}

	last := cmds[len(cmds)-1]
	exitCode, err := exitStatus(last.Wait())

	// Reap the rest of the chain.
	for _, cmd := range cmds[:len(cmds)-1] {
		_ = cmd.Wait()
	}

	if err != nil {
		return nil, err
	}

	r.log().Debug("pipeline finished", "exit_code", exitCode)
	return &Result{Value: value.None(), ExitCode: exitCode, External: true}, nil
}

func exitStatus(err error) (int, error) {
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	default:
		return 0, err
	}
}

// abort kills and reaps processes that were started before a later stage
// failed to start.
func abort(started []*exec.Cmd) {
	for _, cmd := range started {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
		}
	}
}

func closeFile(f *os.File) {
	if f != nil {
		_ = f.Close()
	}
}
