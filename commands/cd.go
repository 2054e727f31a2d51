package commands

import (
	"errors"
	"fmt"

	"github.com/josephlewis42/rush/core/value"
)

var (
	// ErrNoHome is returned by cd when there's no home directory to go to.
	ErrNoHome = errors.New("could not find home")
	// ErrNoSuchDirectory is returned by cd when the target can't be entered.
	ErrNoSuchDirectory = errors.New("no such directory")
)

// Cd changes the shell's working directory.
func Cd(args *Args) (value.Value, error) {
	cmd := &SimpleCommand{
		Use:   "cd [DIR]",
		Short: "Change the working directory, defaults to the home directory.",
	}

	return cmd.Run(args, func(positional []value.Value) (value.Value, error) {
		var target string
		if len(positional) == 0 {
			home, err := args.VOS.UserHomeDir()
			if err != nil {
				return nil, ErrNoHome
			}
			target = home
		} else {
			target = StringArg(positional[0])
		}

		resolved, err := args.VOS.Chdir(target)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNoSuchDirectory, target)
		}
		return value.String(resolved), nil
	})
}

func init() {
	mustAddBuiltin(CommandFunc(Cd), "cd")
}
