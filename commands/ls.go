package commands

import (
	"github.com/josephlewis42/rush/core/value"
	"github.com/josephlewis42/rush/core/vos"
)

// Ls implements a structured directory listing.
func Ls(args *Args) (value.Value, error) {
	cmd := &SimpleCommand{
		Use:   "ls [PATH]",
		Short: "List the entries of a directory as records of name, size, modified and accessed.",
	}

	return cmd.Run(args, func(positional []value.Value) (value.Value, error) {
		target := args.VOS.Getwd()
		if len(positional) > 0 {
			resolved, err := vos.ResolvePath(args.VOS, StringArg(positional[0]))
			if err != nil {
				return nil, err
			}
			target = resolved
		}

		entries, err := vos.ReadDirEntries(args.VOS.FS(), target)
		if err != nil {
			return nil, err
		}

		out := make(value.List, 0, len(entries))
		for _, entry := range entries {
			out = append(out, value.NewObject().
				Insert("name", value.String(entry.Name)).
				Insert("size", value.Size(uint64(entry.Size))).
				Insert("modified", value.Time(entry.Modified)).
				Insert("accessed", value.Time(entry.Accessed)))
		}
		return out, nil
	})
}

func init() {
	mustAddBuiltin(CommandFunc(Ls), "ls")
}
