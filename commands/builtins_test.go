package commands

import (
	"errors"
	"strings"
	"testing"

	"github.com/josephlewis42/rush/core/value"
	"github.com/josephlewis42/rush/core/vos"
	"github.com/josephlewis42/rush/core/vos/vostest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldValues(t *testing.T, v value.Value, field string) []string {
	t.Helper()

	list, ok := v.(value.List)
	require.True(t, ok, "expected a list, got %s", v.TypeName())

	var out []string
	for _, elem := range list {
		obj, ok := elem.(*value.Object)
		require.True(t, ok, "expected an object, got %s", elem.TypeName())
		out = append(out, value.Format(obj.GetDataFromKey(field), nil))
	}
	return out
}

func TestLs(t *testing.T) {
	args := newArgs("ls", nil)
	require.NoError(t, vostest.WriteFile(args.VOS, "/home/rush/notes.txt", []byte("hello"), 0644))
	require.NoError(t, vostest.Mkdir(args.VOS, "/home/rush/src"))
	require.NoError(t, vostest.WriteFile(args.VOS, "/home/rush/src/main.go", []byte("package main\n"), 0644))

	t.Run("cwd", func(t *testing.T) {
		got, err := Ls(args)
		require.NoError(t, err)

		assert.Equal(t, []string{"notes.txt", "src"}, fieldValues(t, got, "name"))

		first := got.(value.List)[0].(*value.Object)
		assert.Equal(t, []string{"name", "size", "modified", "accessed"}, descriptorNames(first))
		assert.Equal(t, value.Size(5), first.GetDataFromKey("size"))
		assert.Equal(t, value.Time(vostest.Timestamp), first.GetDataFromKey("modified"))
		assert.Equal(t, value.Time(vostest.Timestamp), first.GetDataFromKey("accessed"))
	})

	t.Run("relative", func(t *testing.T) {
		args.Args = []value.Value{value.String("src")}
		got, err := Ls(args)
		require.NoError(t, err)

		assert.Equal(t, []string{"main.go"}, fieldValues(t, got, "name"))
	})

	t.Run("home", func(t *testing.T) {
		require.NoError(t, args.VOS.Setwd("/"))
		args.Args = []value.Value{value.String("~/src")}
		got, err := Ls(args)
		require.NoError(t, err)

		assert.Equal(t, []string{"main.go"}, fieldValues(t, got, "name"))
	})

	t.Run("missing", func(t *testing.T) {
		args.Args = []value.Value{value.String("/does/not/exist")}
		_, err := Ls(args)

		assert.Error(t, err)
	})
}

func descriptorNames(obj *value.Object) []string {
	var out []string
	for _, desc := range obj.DataDescriptors() {
		out = append(out, desc.Name)
	}
	return out
}

func TestPs(t *testing.T) {
	got, err := Ps(newArgs("ps", nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"init", "sshd", "rush", "kthreadd"}, fieldValues(t, got, "name"))
	assert.Equal(t, []string{"1", "501", "576", "2"}, fieldValues(t, got, "pid"))
	assert.Equal(t, []string{"9.64 MB", "6.63 MB", "3.50 MB", "0 bytes"}, fieldValues(t, got, "memory"))
}

func TestCd(t *testing.T) {
	t.Run("home", func(t *testing.T) {
		args := newArgs("cd", nil)
		require.NoError(t, args.VOS.Setwd("/"))

		got, err := Cd(args)

		require.NoError(t, err)
		assert.Equal(t, value.String(vostest.Home), got)
		assert.Equal(t, vostest.Home, args.VOS.Getwd())
	})

	t.Run("parent", func(t *testing.T) {
		args := newArgs("cd", nil, "..")

		got, err := Cd(args)

		require.NoError(t, err)
		assert.Equal(t, value.String("/home"), got)
		assert.Equal(t, "/home", args.VOS.Getwd())
	})

	t.Run("numeric name", func(t *testing.T) {
		args := newArgs("cd", nil, 2019)
		require.NoError(t, vostest.Mkdir(args.VOS, "/home/rush/2019"))

		_, err := Cd(args)

		require.NoError(t, err)
		assert.Equal(t, "/home/rush/2019", args.VOS.Getwd())
	})

	t.Run("missing", func(t *testing.T) {
		args := newArgs("cd", nil, "nope")

		_, err := Cd(args)

		assert.True(t, errors.Is(err, ErrNoSuchDirectory), err)
		assert.Equal(t, vostest.Home, args.VOS.Getwd())
	})

	t.Run("file", func(t *testing.T) {
		args := newArgs("cd", nil, "notes.txt")
		require.NoError(t, vostest.WriteFile(args.VOS, "/home/rush/notes.txt", nil, 0644))

		_, err := Cd(args)

		assert.True(t, errors.Is(err, ErrNoSuchDirectory), err)
		assert.Equal(t, vostest.Home, args.VOS.Getwd())
	})

	t.Run("no home", func(t *testing.T) {
		args := newArgs("cd", nil)
		args.VOS = vos.New(vos.NewMapEnv(), args.VOS.FS(), vostest.Processes)

		_, err := Cd(args)

		assert.Equal(t, ErrNoHome, err)
	})
}

func TestSortby(t *testing.T) {
	input := value.NewList(
		value.NewObject().Insert("name", value.String("b")).Insert("size", value.Size(30)),
		value.NewObject().Insert("name", value.String("a")).Insert("size", value.Size(10)),
		value.NewObject().Insert("name", value.String("c")).Insert("size", value.Size(10)),
		value.NewObject().Insert("name", value.String("d")).Insert("size", value.Size(20)),
	)

	t.Run("ascending", func(t *testing.T) {
		got, err := Sortby(newArgs("sortby", input, "size"))
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "c", "d", "b"}, fieldValues(t, got, "name"))
	})

	t.Run("reverse", func(t *testing.T) {
		got, err := Sortby(newArgs("sortby", input, "-r", "size"))
		require.NoError(t, err)

		assert.Equal(t, []string{"b", "d", "a", "c"}, fieldValues(t, got, "name"))
	})

	t.Run("by string", func(t *testing.T) {
		got, err := Sortby(newArgs("sortby", input, "name"))
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b", "c", "d"}, fieldValues(t, got, "name"))
	})

	t.Run("missing field keeps order", func(t *testing.T) {
		got, err := Sortby(newArgs("sortby", input, "color"))
		require.NoError(t, err)

		assert.Equal(t, []string{"b", "a", "c", "d"}, fieldValues(t, got, "name"))
	})

	t.Run("input untouched", func(t *testing.T) {
		_, err := Sortby(newArgs("sortby", input, "size"))
		require.NoError(t, err)

		assert.Equal(t, []string{"b", "a", "c", "d"}, fieldValues(t, input, "name"))
	})

	t.Run("empty", func(t *testing.T) {
		got, err := Sortby(newArgs("sortby", value.NewList(), "size"))
		require.NoError(t, err)

		assert.True(t, value.Equal(value.NewList(), got))
	})

	t.Run("no field", func(t *testing.T) {
		_, err := Sortby(newArgs("sortby", input))

		assert.True(t, errors.Is(err, ErrMissingArgument), err)
	})

	t.Run("no input", func(t *testing.T) {
		_, err := Sortby(newArgs("sortby", nil, "size"))

		assert.Equal(t, ErrNotAList, err)
	})

	t.Run("not objects", func(t *testing.T) {
		_, err := Sortby(newArgs("sortby", value.NewList(value.Int(1)), "size"))

		assert.Equal(t, ErrNotAList, err)
	})

	t.Run("external input", func(t *testing.T) {
		args := newArgs("sortby", nil, "size")
		args.Input = ExternalStream(strings.NewReader("a\nb\n"))

		_, err := Sortby(args)

		assert.Equal(t, ErrExternalStream, err)
	})
}

func TestLimit(t *testing.T) {
	input := records("n", value.Int(1), value.Int(2), value.Int(3))

	cases := map[string]struct {
		count interface{}
		want  []string
	}{
		"fewer":        {count: 2, want: []string{"1", "2"}},
		"exact":        {count: 3, want: []string{"1", "2", "3"}},
		"more":         {count: 10, want: []string{"1", "2", "3"}},
		"zero":         {count: 0, want: nil},
		"negative":     {count: "-3", want: nil},
		"string count": {count: "1", want: []string{"1"}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got, err := Limit(newArgs("take", input, tc.count))
			require.NoError(t, err)

			assert.Equal(t, tc.want, fieldValues(t, got, "n"))
		})
	}

	t.Run("not a number", func(t *testing.T) {
		_, err := Limit(newArgs("take", input, "many"))

		assert.Error(t, err)
	})

	t.Run("no count", func(t *testing.T) {
		_, err := Limit(newArgs("limit", input))

		assert.True(t, errors.Is(err, ErrMissingArgument), err)
	})

	t.Run("no input", func(t *testing.T) {
		_, err := Limit(newArgs("limit", nil, 1))

		assert.Equal(t, ErrNotAList, err)
	})
}

func TestRev(t *testing.T) {
	input := records("n", value.Int(1), value.Int(2), value.Int(3))

	got, err := Rev(newArgs("rev", input))
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2", "1"}, fieldValues(t, got, "n"))

	twice, err := Rev(newArgs("rev", got))
	require.NoError(t, err)
	assert.True(t, value.Equal(input, twice))

	t.Run("primitives", func(t *testing.T) {
		got, err := Rev(newArgs("rev", value.NewList(value.String("a"), value.String("b"))))
		require.NoError(t, err)

		assert.True(t, value.Equal(value.NewList(value.String("b"), value.String("a")), got))
	})

	t.Run("not a list", func(t *testing.T) {
		_, err := Rev(newArgs("rev", value.String("abc")))

		assert.Equal(t, ErrNotAList, err)
	})
}

func TestEnv(t *testing.T) {
	got, err := Env(newArgs("env", nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"HOME", "PATH", "PWD", "USER"}, fieldValues(t, got, "name"))
	assert.Equal(t, []string{vostest.Home, vostest.Path, vostest.Home, "rush"}, fieldValues(t, got, "value"))
}

func TestWhich(t *testing.T) {
	args := newArgs("which", nil)
	require.NoError(t, vostest.WriteFile(args.VOS, "/usr/bin/grep", nil, 0755))
	require.NoError(t, vostest.WriteFile(args.VOS, "/bin/grep", nil, 0755))
	require.NoError(t, vostest.WriteFile(args.VOS, "/bin/tr", nil, 0755))

	t.Run("found", func(t *testing.T) {
		args.Args = []value.Value{value.String("grep"), value.String("missing"), value.String("tr")}
		got, err := Which(args)
		require.NoError(t, err)

		assert.Equal(t, []string{"grep", "tr"}, fieldValues(t, got, "name"))
		assert.Equal(t, []string{"/usr/bin/grep", "/bin/tr"}, fieldValues(t, got, "path"))
	})

	t.Run("none found", func(t *testing.T) {
		args.Args = []value.Value{value.String("missing")}
		_, err := Which(args)

		assert.Equal(t, vos.ErrNotFound, err)
	})

	t.Run("no arguments", func(t *testing.T) {
		args.Args = nil
		_, err := Which(args)

		assert.True(t, errors.Is(err, ErrMissingArgument), err)
	})
}
