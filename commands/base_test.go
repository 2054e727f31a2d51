package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/josephlewis42/rush/core/value"
	"github.com/josephlewis42/rush/core/vos/vostest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllCommands(t *testing.T) {
	for _, cmdEntry := range ListBuiltinCommands() {
		t.Run(strings.Join(cmdEntry.Names, ","), func(t *testing.T) {
			if cmdEntry.Command == nil {
				t.Fatal("nil command", cmdEntry.Names)
			}
		})
	}
}

func TestAllCommands_help(t *testing.T) {
	for _, cmdEntry := range ListBuiltinCommands() {
		name := cmdEntry.Names[0]
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			args := newArgs(name, value.None(), "--help")
			args.Stdout = &out

			got, err := cmdEntry.Command.Run(args)

			require.NoError(t, err)
			assert.Equal(t, value.None(), got)
			assert.True(t, strings.HasPrefix(out.String(), "usage: "), out.String())
		})
	}
}

func TestSimpleCommand_unknownFlag(t *testing.T) {
	_, err := Rev(newArgs("rev", value.NewList(), "--bogus"))

	assert.Error(t, err)
}

func TestSimpleCommand_doubleDash(t *testing.T) {
	cmd := &SimpleCommand{Use: "test", Short: "test"}
	var got []value.Value
	_, err := cmd.Run(newArgs("test", nil, "--", "-h", 3), func(positional []value.Value) (value.Value, error) {
		got = positional
		return value.None(), nil
	})

	require.NoError(t, err)
	assert.Equal(t, []value.Value{value.String("-h"), value.Int(3)}, got)
}

func TestStringArg(t *testing.T) {
	assert.Equal(t, "foo", StringArg(value.String("foo")))
	assert.Equal(t, "2019", StringArg(value.Int(2019)))
}

func TestIntArg(t *testing.T) {
	cases := map[string]struct {
		arg     value.Value
		want    int64
		wantErr bool
	}{
		"integer":         {arg: value.Int(3), want: 3},
		"negative string": {arg: value.String("-3"), want: -3},
		"word":            {arg: value.String("three"), wantErr: true},
		"list":            {arg: value.NewList(), wantErr: true},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got, err := IntArg(tc.arg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// newArgs builds arguments for a command running on a deterministic OS.
// Go strings become String values and ints become Integer values.
func newArgs(name string, input value.Value, rawArgs ...interface{}) *Args {
	var argv []value.Value
	for _, raw := range rawArgs {
		switch v := raw.(type) {
		case string:
			argv = append(argv, value.String(v))
		case int:
			argv = append(argv, value.Int(int64(v)))
		default:
			panic("unsupported argument type")
		}
	}

	in := NoStream()
	if input != nil {
		in = InternalStream(input)
	}

	return &Args{
		Name:  name,
		VOS:   vostest.NewDeterministicOS(),
		Args:  argv,
		Input: in,
	}
}

// records builds a list of single-field objects.
func records(field string, vals ...value.Value) value.List {
	out := value.NewList()
	for _, v := range vals {
		out = append(out, value.NewObject().Insert(field, v))
	}
	return out
}
