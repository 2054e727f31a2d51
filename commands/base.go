// Package commands holds the shell's built-in commands. Built-ins operate on
// structured values rather than text: each takes typed arguments plus an
// optional input value and produces a new value.
package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	getopt "github.com/pborman/getopt/v2"
	"github.com/josephlewis42/rush/core/value"
	"github.com/josephlewis42/rush/core/vos"
)

// Command is a built-in command.
type Command interface {
	// Run executes the command given its arguments and input stream.
	Run(args *Args) (value.Value, error)
}

// CommandFunc adapts a function to the Command interface.
type CommandFunc func(args *Args) (value.Value, error)

// Run implements Command.Run.
func (f CommandFunc) Run(args *Args) (value.Value, error) {
	return f(args)
}

// Args holds everything a built-in can see while it runs.
type Args struct {
	// Name is the name the command was invoked with.
	Name string
	// VOS is the environment, filesystem and process table.
	VOS vos.VOS
	// Args holds the positional arguments, including any flags.
	Args []value.Value
	// Input is the value produced by the previous stage.
	Input InStream
	// Stdout receives help text.
	Stdout io.Writer
	// TimeLocation is used when a command needs to interpret times.
	TimeLocation *time.Location
}

var (
	// ErrMissingArgument is returned when a required argument isn't given.
	ErrMissingArgument = errors.New("missing argument")
	// ErrExternalStream is returned when a built-in is handed an OS byte stream.
	ErrExternalStream = errors.New("external streams not supported yet")
	// ErrNotAList is returned when the input isn't a list of the expected shape.
	ErrNotAList = errors.New("expects a list of objects")
)

// BuiltinEntry is a command and the names it's registered under.
type BuiltinEntry struct {
	Names   []string
	Command Command
}

var allBuiltins []BuiltinEntry

// mustAddBuiltin registers a command under one or more names, it panics if a
// name is already taken.
func mustAddBuiltin(cmd Command, names ...string) {
	for _, entry := range allBuiltins {
		for _, existing := range entry.Names {
			for _, name := range names {
				if existing == name {
					panic(fmt.Sprintf("duplicate builtin %q", name))
				}
			}
		}
	}
	allBuiltins = append(allBuiltins, BuiltinEntry{Names: names, Command: cmd})
}

// ListBuiltinCommands returns every built-in sorted by its first name.
func ListBuiltinCommands() []BuiltinEntry {
	out := make([]BuiltinEntry, len(allBuiltins))
	copy(out, allBuiltins)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Names[0] < out[j].Names[0]
	})
	return out
}

// SimpleCommand handles flags and help for a built-in.
type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag isn't
	// added.
	ShowHelp *bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run parses leading flags out of the arguments, then calls the callback with
// the remaining typed positional arguments. Flags are string arguments that
// start with "-" and aren't numbers.
func (s *SimpleCommand) Run(args *Args, callback func(positional []value.Value) (value.Value, error)) (value.Value, error) {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	split := 0
	for split < len(args.Args) && isFlag(args.Args[split]) {
		split++
	}

	argv := []string{args.Name}
	for _, arg := range args.Args[:split] {
		argv = append(argv, StringArg(arg))
	}

	if err := opts.Getopt(argv, nil); err != nil {
		return nil, err
	}

	if *s.ShowHelp {
		if args.Stdout != nil {
			s.PrintHelp(args.Stdout)
		}
		return value.None(), nil
	}

	// Anything after "--" is positional.
	positional := args.Args[split:]
	if n := len(opts.Args()); n > 0 {
		positional = args.Args[split-n:]
	}

	return callback(positional)
}

func isFlag(v value.Value) bool {
	p, ok := v.(value.Primitive)
	if !ok {
		return false
	}
	s, ok := p.AsString()
	if !ok || len(s) < 2 || !strings.HasPrefix(s, "-") {
		return false
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return false
	}
	return true
}

// StringArg converts an argument to text, numbers are rendered in decimal.
func StringArg(v value.Value) string {
	if p, ok := v.(value.Primitive); ok {
		if s, ok := p.AsString(); ok {
			return s
		}
	}
	return value.Format(v, nil)
}

// IntArg converts an argument to an integer. Strings holding a decimal number
// are accepted.
func IntArg(v value.Value) (int64, error) {
	if p, ok := v.(value.Primitive); ok {
		if i, ok := p.AsInt(); ok {
			return i, nil
		}
		if s, ok := p.AsString(); ok {
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("expected an integer, got %q", StringArg(v))
}
