package commands

import (
	"strings"

	"github.com/josephlewis42/rush/core/value"
)

// Env lists the environment of the shell.
func Env(args *Args) (value.Value, error) {
	cmd := &SimpleCommand{
		Use:   "env",
		Short: "List the environment variables as records of name and value.",
	}

	return cmd.Run(args, func(_ []value.Value) (value.Value, error) {
		env := args.VOS.Environ()
		out := make(value.List, 0, len(env))
		for _, envDef := range env {
			name, val, _ := strings.Cut(envDef, "=")
			out = append(out, value.NewObject().
				Insert("name", value.String(name)).
				Insert("value", value.String(val)))
		}
		return out, nil
	})
}

func init() {
	mustAddBuiltin(CommandFunc(Env), "env")
}
