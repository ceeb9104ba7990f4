//go:build !linux && !darwin && !windows

package fsx

import (
	"os"
	"time"
)

func creationTime(path string, info os.FileInfo) time.Time {
	return info.ModTime()
}
