package vos

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// VFS implements a virtual filesystem.
type VFS = afero.Fs

// PathError records an error and the operation and file path that caused it.
type PathError = fs.PathError

// ErrNotDir is returned when a directory was expected.
var ErrNotDir = errors.New("not a directory")

// NewOsFs returns a VFS backed by the host filesystem.
func NewOsFs() VFS {
	return afero.NewOsFs()
}

// ResolvePath makes p absolute. Absolute paths are used as-is, paths starting
// with ~ are expanded against the home directory and everything else is
// joined onto the working directory.
func ResolvePath(env VEnv, p string) (string, error) {
	switch {
	case filepath.IsAbs(p):
		return filepath.Clean(p), nil

	case p == "~" || strings.HasPrefix(p, "~/"):
		home, err := env.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~")), nil

	default:
		return filepath.Join(env.Getwd(), p), nil
	}
}

// DirEntry is a ready-made record of one directory entry's metadata.
type DirEntry struct {
	Name     string
	Size     int64
	IsDir    bool
	Modified time.Time
	Accessed time.Time
}

// ReadDirEntries lists the entries of dir sorted by name.
func ReadDirEntries(vfs VFS, dir string) ([]DirEntry, error) {
	infos, err := afero.ReadDir(vfs, dir)
	if err != nil {
		return nil, err
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name() < infos[j].Name()
	})

	out := make([]DirEntry, 0, len(infos))
	for _, fi := range infos {
		out = append(out, DirEntry{
			Name:     fi.Name(),
			Size:     fi.Size(),
			IsDir:    fi.IsDir(),
			Modified: fi.ModTime(),
			Accessed: accessTime(fi),
		})
	}
	return out, nil
}
