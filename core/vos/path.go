package vos

import (
	"errors"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is the error resulting if a path search failed to find an executable file.
var ErrNotFound = exec.ErrNotFound

func findExecutable(vfs VFS, file string) error {
	d, err := vfs.Stat(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case err != nil:
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

// SearchPath splits $PATH into directories. An empty element means the
// working directory.
func SearchPath(env VEnv) []string {
	var out []string
	for _, dir := range filepath.SplitList(env.Getenv(EnvPath)) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		out = append(out, dir)
	}
	return out
}

// LookPath searches for an executable named file in the directories named by
// the PATH environment variable. If file contains a slash, it is tried directly
// and the PATH is not consulted. Relative results are resolved against the
// working directory.
func LookPath(v VOS, file string) (string, error) {
	if strings.Contains(file, "/") {
		resolved, err := ResolvePath(v, file)
		if err != nil {
			return "", err
		}
		if err := findExecutable(v.FS(), resolved); err != nil {
			return "", err
		}
		return resolved, nil
	}

	for _, dir := range SearchPath(v) {
		path, err := ResolvePath(v, filepath.Join(dir, file))
		if err != nil {
			continue
		}
		if err := findExecutable(v.FS(), path); err == nil {
			return path, nil
		}
	}
	return "", ErrNotFound
}

// ScanPath lists the names of every entry in every $PATH directory.
// Directories that can't be read are skipped.
func ScanPath(v VOS) []string {
	var out []string
	for _, dir := range SearchPath(v) {
		resolved, err := ResolvePath(v, dir)
		if err != nil {
			continue
		}
		names, err := afero.ReadDir(v.FS(), resolved)
		if err != nil {
			continue
		}
		for _, fi := range names {
			out = append(out, fi.Name())
		}
	}
	return out
}
