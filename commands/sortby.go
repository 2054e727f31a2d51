package commands

import (
	"fmt"
	"sort"

	"github.com/josephlewis42/rush/core/value"
)

// Sortby orders a list of objects by one of their fields.
func Sortby(args *Args) (value.Value, error) {
	cmd := &SimpleCommand{
		Use:   "sortby [-r] FIELD",
		Short: "Stable sort of the input records by FIELD, smallest first.",
	}
	reverse := cmd.Flags().BoolLong("reverse", 'r', "sort largest first")

	return cmd.Run(args, func(positional []value.Value) (value.Value, error) {
		if len(positional) == 0 {
			return nil, fmt.Errorf("%w: no sortby field provided", ErrMissingArgument)
		}
		field := StringArg(positional[0])

		list, err := args.Input.Objects()
		if err != nil {
			return nil, err
		}

		sorted := make(value.List, len(list))
		copy(sorted, list)

		key := func(i int) value.Value {
			return sorted[i].(*value.Object).GetDataFromKey(field)
		}
		sort.SliceStable(sorted, func(i, j int) bool {
			a, aok := key(i).(value.Primitive)
			b, bok := key(j).(value.Primitive)
			if !aok || !bok {
				return false
			}
			cmp, ok := value.Compare(a, b)
			if !ok {
				return false
			}
			if *reverse {
				return cmp > 0
			}
			return cmp < 0
		})

		return sorted, nil
	})
}

func init() {
	mustAddBuiltin(CommandFunc(Sortby), "sortby")
}
