package commands

import (
	"fmt"

	"github.com/josephlewis42/rush/core/value"
	"github.com/josephlewis42/rush/core/vos"
)

// Which locates programs on the search path.
func Which(args *Args) (value.Value, error) {
	cmd := &SimpleCommand{
		Use:   "which COMMAND...",
		Short: "Locate programs on $PATH as records of name and path.",
	}

	return cmd.Run(args, func(positional []value.Value) (value.Value, error) {
		if len(positional) == 0 {
			return nil, fmt.Errorf("%w: no command provided", ErrMissingArgument)
		}

		out := value.NewList()
		for _, arg := range positional {
			name := StringArg(arg)
			res, err := vos.LookPath(args.VOS, name)
			if err != nil {
				continue
			}
			out = append(out, value.NewObject().
				Insert("name", value.String(name)).
				Insert("path", value.String(res)))
		}

		if len(out) == 0 {
			return nil, vos.ErrNotFound
		}
		return out, nil
	})
}

func init() {
	mustAddBuiltin(CommandFunc(Which), "which")
}
