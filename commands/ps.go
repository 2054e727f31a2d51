package commands

import (
	"github.com/josephlewis42/rush/core/value"
)

// Ps implements a structured process snapshot.
func Ps(args *Args) (value.Value, error) {
	cmd := &SimpleCommand{
		Use:   "ps",
		Short: "Report a snapshot of the current processes as records of name, pid and memory.",
	}

	return cmd.Run(args, func(_ []value.Value) (value.Value, error) {
		procs, err := args.VOS.Processes()
		if err != nil {
			return nil, err
		}

		out := make(value.List, 0, len(procs))
		for _, proc := range procs {
			out = append(out, value.NewObject().
				Insert("name", value.String(proc.Name)).
				Insert("pid", value.Int(proc.Pid)).
				Insert("memory", value.Size(proc.Memory)))
		}
		return out, nil
	})
}

func init() {
	mustAddBuiltin(CommandFunc(Ps), "ps")
}
