package commands

import (
	"sort"
	"strings"
	"sync"

	"github.com/armon/go-radix"
	"github.com/josephlewis42/rush/core/vos"
)

// Registry maps command names to built-ins and keeps an index of the
// executables found on $PATH.
//
// The set of built-ins is fixed once the registry is constructed. The
// externals index may be refreshed at any time.
type Registry struct {
	builtins map[string]Command

	mu        sync.RWMutex
	externals *radix.Tree
}

// NewRegistry creates a registry holding the given entries.
func NewRegistry(entries ...BuiltinEntry) *Registry {
	r := &Registry{
		builtins:  make(map[string]Command),
		externals: radix.New(),
	}
	for _, entry := range entries {
		for _, name := range entry.Names {
			r.builtins[name] = entry.Command
		}
	}
	return r
}

// DefaultRegistry creates a registry holding every built-in.
func DefaultRegistry() *Registry {
	return NewRegistry(ListBuiltinCommands()...)
}

// Lookup finds a built-in by name.
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.builtins[name]
	return cmd, ok
}

// Builtins returns the sorted names of every built-in.
func (r *Registry) Builtins() []string {
	var out []string
	for name := range r.builtins {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// RefreshExternals rebuilds the externals index from the entries of every
// directory on $PATH and returns the number of names indexed.
func (r *Registry) RefreshExternals(v vos.VOS) int {
	tree := radix.New()
	for _, name := range vos.ScanPath(v) {
		tree.Insert(name, struct{}{})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.externals = tree
	return tree.Len()
}

// IsExternal returns true if the name was found on $PATH during the last
// refresh.
func (r *Registry) IsExternal(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.externals.Get(name)
	return ok
}

// CommandExists returns true if the name is a built-in or a known external.
func (r *Registry) CommandExists(name string) bool {
	if _, ok := r.Lookup(name); ok {
		return true
	}
	return r.IsExternal(name)
}

// CommandsWithPrefix returns the sorted, de-duplicated names of built-ins and
// externals starting with prefix.
func (r *Registry) CommandsWithPrefix(prefix string) []string {
	seen := make(map[string]bool)
	for name := range r.builtins {
		if strings.HasPrefix(name, prefix) {
			seen[name] = true
		}
	}

	r.mu.RLock()
	r.externals.WalkPrefix(prefix, func(name string, _ interface{}) bool {
		seen[name] = true
		return false
	})
	r.mu.RUnlock()

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
