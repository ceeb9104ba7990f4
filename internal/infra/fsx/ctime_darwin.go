//go:build darwin

package fsx

import (
	"os"
	"syscall"
	"time"
)

func creationTime(path string, info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Birthtimespec.Unix())
	}
	return info.ModTime()
}
