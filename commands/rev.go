package commands

import (
	"github.com/josephlewis42/rush/core/value"
)

// Rev reverses a list.
func Rev(args *Args) (value.Value, error) {
	cmd := &SimpleCommand{
		Use:   "rev",
		Short: "Reverse the order of the input.",
	}

	return cmd.Run(args, func(_ []value.Value) (value.Value, error) {
		list, err := args.Input.List()
		if err != nil {
			return nil, err
		}

		out := make(value.List, len(list))
		for i, elem := range list {
			out[len(list)-1-i] = elem
		}
		return out, nil
	})
}

func init() {
	mustAddBuiltin(CommandFunc(Rev), "rev")
}
