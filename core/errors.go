package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/josephlewis42/rush/core/shell"
	"github.com/josephlewis42/rush/core/vos"
)

// ErrEmptyPipeline is returned when asked to run a pipeline with no stages.
var ErrEmptyPipeline = shell.ErrEmptyPipeline

// StageError is returned when a built-in in a pipeline fails.
type StageError struct {
	// Stage is the zero based index of the failing stage.
	Stage int
	Name  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// SpawnError is returned when an external program can't be found or started.
type SpawnError struct {
	Program string
	Err     error
}

func (e *SpawnError) Error() string {
	if strings.Contains(e.Program, "|") && errors.Is(e.Err, vos.ErrNotFound) {
		return fmt.Sprintf("%s: %v (put spaces around '|' to pipe)", e.Program, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Program, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// UnsupportedTransportError is returned when two adjacent stages can't be
// connected, such as a built-in piping into an external program.
type UnsupportedTransportError struct {
	From CommandType
	To   CommandType
}

func (e *UnsupportedTransportError) Error() string {
	return fmt.Sprintf("can't pipe %s into %s: external streams not supported yet",
		describe(e.From), describe(e.To))
}

func describe(ct CommandType) string {
	switch ct := ct.(type) {
	case *Internal:
		return fmt.Sprintf("built-in %q", ct.Name)
	case *External:
		return fmt.Sprintf("program %q", ct.Program)
	default:
		return "unknown command"
	}
}

// ResolutionError is returned when a command name can't be resolved.
// Resolution currently always succeeds, unknown names are treated as external
// programs.
type ResolutionError struct {
	Name string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: command not found", e.Name)
}
