package vos

import (
	"bufio"
	"errors"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// Process is a ready-made snapshot record of one OS process.
type Process struct {
	Name   string
	Pid    int64
	Memory uint64 // resident set size in bytes
}

// VProc supplies process snapshots.
type VProc interface {
	// Processes returns the processes running right now, ordered by pid.
	Processes() ([]Process, error)
}

// StaticProcesses is a VProc that always reports the same processes.
type StaticProcesses []Process

var _ VProc = StaticProcesses(nil)

// Processes implements VProc.Processes.
func (s StaticProcesses) Processes() ([]Process, error) {
	out := make([]Process, len(s))
	copy(out, s)
	return out, nil
}

// ProcFS reads process snapshots from a Linux style /proc tree.
type ProcFS struct {
	fs   VFS
	root string
}

var _ VProc = (*ProcFS)(nil)

// NewProcFS reads processes from /proc on the given filesystem.
func NewProcFS(vfs VFS) *ProcFS {
	return &ProcFS{fs: vfs, root: "/proc"}
}

// Processes implements VProc.Processes.
func (p *ProcFS) Processes() ([]Process, error) {
	entries, err := afero.ReadDir(p.fs, p.root)
	if err != nil {
		return nil, err
	}

	var out []Process
	for _, entry := range entries {
		pid, err := strconv.ParseInt(entry.Name(), 10, 64)
		if err != nil || !entry.IsDir() {
			continue
		}

		proc, err := p.readStatus(pid)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Exited between listing and reading.
			continue
		case err != nil:
			return nil, err
		}
		out = append(out, proc)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Pid < out[j].Pid
	})
	return out, nil
}

// readStatus parses /proc/<pid>/status. Kernel threads have no VmRSS line
// and report zero memory.
func (p *ProcFS) readStatus(pid int64) (Process, error) {
	fd, err := p.fs.Open(path.Join(p.root, strconv.FormatInt(pid, 10), "status"))
	if err != nil {
		return Process{}, err
	}
	defer fd.Close()

	proc := Process{Pid: pid}
	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		key, val, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		val = strings.TrimSpace(val)

		switch key {
		case "Name":
			proc.Name = val
		case "VmRSS":
			// e.g. "1234 kB"
			fields := strings.Fields(val)
			if len(fields) == 0 {
				continue
			}
			kb, err := strconv.ParseUint(fields[0], 10, 64)
			if err != nil {
				continue
			}
			proc.Memory = kb * 1024
		}
	}

	return proc, scanner.Err()
}
