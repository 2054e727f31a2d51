// Package vostest provides a deterministic in-memory OS for tests.
package vostest

import (
	"os"
	"path"
	"time"

	"github.com/josephlewis42/rush/core/vos"
	"github.com/spf13/afero"
)

const (
	// Home is the home directory of the test OS, it's also the initial
	// working directory.
	Home = "/home/rush"
	// Path is the search path of the test OS.
	Path = "/usr/bin:/bin"
)

// Timestamp is Go's reference timestamp, used for every file time.
var Timestamp = time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)

// Processes is the snapshot reported by the test OS.
var Processes = vos.StaticProcesses{
	{Name: "init", Pid: 1, Memory: 9868 * 1024},
	{Name: "sshd", Pid: 501, Memory: 6792 * 1024},
	{Name: "rush", Pid: 576, Memory: 3584 * 1024},
	{Name: "kthreadd", Pid: 2, Memory: 0},
}

// NewDeterministicOS creates an OS with an empty in-memory filesystem holding
// only the home directory.
func NewDeterministicOS() vos.VOS {
	fs := afero.NewMemMapFs()
	_ = fs.MkdirAll(Home, 0755)

	env := vos.NewMapEnvFromEnvList([]string{
		"HOME=" + Home,
		"PATH=" + Path,
		"USER=rush",
	})
	_ = env.Setwd(Home)

	return vos.New(env, fs, Processes)
}

// WriteFile creates a file with fixed timestamps on the test OS, creating
// parent directories as needed.
func WriteFile(v vos.VOS, name string, data []byte, perm os.FileMode) error {
	fs := v.FS()
	if err := fs.MkdirAll(path.Dir(name), 0755); err != nil {
		return err
	}
	if err := afero.WriteFile(fs, name, data, perm); err != nil {
		return err
	}
	return fs.Chtimes(name, Timestamp, Timestamp)
}

// Mkdir creates a directory with fixed timestamps on the test OS.
func Mkdir(v vos.VOS, name string) error {
	fs := v.FS()
	if err := fs.MkdirAll(name, 0755); err != nil {
		return err
	}
	return fs.Chtimes(name, Timestamp, Timestamp)
}
