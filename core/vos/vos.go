// Package vos holds the operating system facing collaborators of the shell:
// the environment and working directory, the filesystem, executable lookup on
// the search path, and process snapshots.
//
// Every piece is an interface so the pipeline engine can be exercised against
// an in-memory OS in tests.
package vos

// VOS provides a virtual OS interface.
type VOS interface {
	VEnv
	VProc

	// FS returns the filesystem used for directory listings, path checks and
	// executable lookup.
	FS() VFS

	// Chdir changes the working directory after checking the target is a
	// directory. Relative paths and ~ are resolved first.
	Chdir(dir string) (string, error)
}

type virtualOS struct {
	VEnv
	VProc
	fs VFS
}

var _ VOS = (*virtualOS)(nil)

// New combines an environment, filesystem and process lister into a VOS.
func New(env VEnv, fs VFS, procs VProc) VOS {
	return &virtualOS{VEnv: env, VProc: procs, fs: fs}
}

// NewHostOS returns a VOS backed by the real process environment, disk and
// /proc.
func NewHostOS() VOS {
	fs := NewOsFs()
	return New(NewOSEnv(), fs, NewProcFS(fs))
}

func (v *virtualOS) FS() VFS {
	return v.fs
}

func (v *virtualOS) Chdir(dir string) (string, error) {
	resolved, err := ResolvePath(v, dir)
	if err != nil {
		return "", err
	}

	fi, err := v.fs.Stat(resolved)
	if err != nil {
		return "", err
	}
	if !fi.IsDir() {
		return "", &PathError{Op: "chdir", Path: resolved, Err: ErrNotDir}
	}

	if err := v.VEnv.Setwd(resolved); err != nil {
		return "", err
	}
	return resolved, nil
}
