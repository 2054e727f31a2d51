package core

import (
	"github.com/josephlewis42/rush/commands"
	"github.com/josephlewis42/rush/core/shell"
	"github.com/josephlewis42/rush/core/value"
)

// CommandType is a resolved pipeline stage, either *Internal or *External.
type CommandType interface {
	stageName() string
}

// Internal is a stage run by a built-in.
type Internal struct {
	Name    string
	Command commands.Command
	Args    []value.Value
}

func (i *Internal) stageName() string {
	return i.Name
}

// External is a stage run by an OS process.
type External struct {
	Program string
	Args    []string
}

func (e *External) stageName() string {
	return e.Program
}

// Resolve decides how a parsed command runs. Built-in names resolve to
// Internal with typed arguments, anything else resolves to External with the
// arguments rendered as text whether or not the program exists.
func Resolve(reg *commands.Registry, cmd shell.ParsedCommand) CommandType {
	if builtin, ok := reg.Lookup(cmd.Name); ok {
		args := make([]value.Value, 0, len(cmd.Args))
		for _, arg := range cmd.Args {
			args = append(args, toValue(arg))
		}
		return &Internal{Name: cmd.Name, Command: builtin, Args: args}
	}

	args := make([]string, 0, len(cmd.Args))
	for _, arg := range cmd.Args {
		args = append(args, arg.String())
	}
	return &External{Program: cmd.Name, Args: args}
}

// ResolvePipeline resolves every stage of a pipeline.
func ResolvePipeline(reg *commands.Registry, pipeline *shell.ParsedPipeline) []CommandType {
	out := make([]CommandType, 0, len(pipeline.Commands))
	for _, cmd := range pipeline.Commands {
		out = append(out, Resolve(reg, cmd))
	}
	return out
}

func toValue(expr shell.Expr) value.Value {
	if expr.Val.Kind == shell.ValNum {
		return value.Int(expr.Val.Num)
	}
	return value.String(expr.Val.Str)
}
