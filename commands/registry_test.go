package commands

import (
	"testing"

	"github.com/josephlewis42/rush/core/vos/vostest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()

	assert.Equal(t, []string{"cd", "env", "limit", "ls", "ps", "rev", "sortby", "take", "which"}, reg.Builtins())

	for _, name := range reg.Builtins() {
		_, ok := reg.Lookup(name)
		assert.True(t, ok, name)
	}

	_, ok := reg.Lookup("grep")
	assert.False(t, ok)
}

func TestRegistry_externals(t *testing.T) {
	v := vostest.NewDeterministicOS()
	require.NoError(t, vostest.WriteFile(v, "/usr/bin/grep", nil, 0755))
	require.NoError(t, vostest.WriteFile(v, "/usr/bin/git", nil, 0755))
	require.NoError(t, vostest.WriteFile(v, "/bin/ls", nil, 0755))

	reg := DefaultRegistry()
	assert.False(t, reg.CommandExists("grep"))

	assert.Equal(t, 3, reg.RefreshExternals(v))

	assert.True(t, reg.CommandExists("grep"))
	assert.True(t, reg.CommandExists("sortby"))
	assert.False(t, reg.CommandExists("awk"))
	assert.True(t, reg.IsExternal("ls"))
	assert.False(t, reg.IsExternal("sortby"))

	assert.Equal(t, []string{"git", "grep"}, reg.CommandsWithPrefix("g"))
	assert.Equal(t, []string{"limit", "ls"}, reg.CommandsWithPrefix("l"))
	assert.Empty(t, reg.CommandsWithPrefix("zz"))
}
