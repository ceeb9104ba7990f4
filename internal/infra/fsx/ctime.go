package fsx

import (
	"errors"
	"os"
	"time"
)

var errNilInfo = errors.New("fsx: FileInfo 为空")

// CreationTime 返回文件的创建时间。
//
// 优先级：birth time（系统提供时）> ctime（Linux 无 btime 时）> mtime。
// info 来自非 OS 文件系统（例如 afero.MemMapFs）时只能返回 mtime。
func CreationTime(path string, info os.FileInfo) (time.Time, error) {
	if info == nil {
		return time.Time{}, errNilInfo
	}
	return creationTime(path, info), nil
}
