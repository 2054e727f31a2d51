package commands

import (
	"fmt"

	"github.com/josephlewis42/rush/core/value"
)

// Limit keeps the first N elements of a list.
func Limit(args *Args) (value.Value, error) {
	cmd := &SimpleCommand{
		Use:   fmt.Sprintf("%s N", args.Name),
		Short: "Keep the first N elements of the input.",
	}

	return cmd.Run(args, func(positional []value.Value) (value.Value, error) {
		if len(positional) == 0 {
			return nil, fmt.Errorf("%w: no limit number provided", ErrMissingArgument)
		}
		n, err := IntArg(positional[0])
		if err != nil {
			return nil, err
		}

		list, err := args.Input.List()
		if err != nil {
			return nil, err
		}

		switch {
		case n <= 0:
			return value.List{}, nil
		case n >= int64(len(list)):
			n = int64(len(list))
		}

		out := make(value.List, n)
		copy(out, list[:n])
		return out, nil
	})
}

func init() {
	mustAddBuiltin(CommandFunc(Limit), "limit", "take")
}
