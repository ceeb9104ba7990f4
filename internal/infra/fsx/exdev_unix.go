//go:build unix

package fsx

import (
	"errors"

	"golang.org/x/sys/unix"
)

// os.LinkError / *CrossDeviceError 都实现了 Unwrap，errors.Is 会一路展开到 errno。
func isEXDEV(err error) bool {
	return errors.Is(err, unix.EXDEV)
}
