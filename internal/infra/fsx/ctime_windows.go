//go:build windows

package fsx

import (
	"os"
	"syscall"
	"time"
)

func creationTime(path string, info os.FileInfo) time.Time {
	if d, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, d.CreationTime.Nanoseconds())
	}
	return info.ModTime()
}
