//go:build !linux

package vos

import (
	"io/fs"
	"time"
)

// Access times aren't portable, fall back to the modification time.
func accessTime(fi fs.FileInfo) time.Time {
	return fi.ModTime()
}
