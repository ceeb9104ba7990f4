package fsx

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// 通过可替换的函数指针，让测试能稳定模拟 EXDEV 等错误。
var renameFunc = renameNoReplace

// PathTypeConflictError 表示目标路径类型冲突（例如期望目录但实际是文件）。
// 上层可把它映射为 reason=target_conflict。
type PathTypeConflictError struct {
	Path string
	Want string
	Got  string
}

func (e *PathTypeConflictError) Error() string {
	return fmt.Sprintf("目标路径类型冲突：%q（期望 %s，实际 %s）", e.Path, e.Want, e.Got)
}

func IsPathTypeConflict(err error) bool {
	var e *PathTypeConflictError
	return errors.As(err, &e)
}

// CrossDeviceError 表示跨盘（EXDEV）导致的 rename 失败。
// 遇到 EXDEV 直接失败，不做 copy+delete：失败的移动不能留下半个目标文件。
type CrossDeviceError struct {
	Src string
	Dst string
	Err error
}

func (e *CrossDeviceError) Error() string {
	return fmt.Sprintf("跨盘移动失败（EXDEV）：%q -> %q；源与目标必须在同一文件系统：%v", e.Src, e.Dst, e.Err)
}

func (e *CrossDeviceError) Unwrap() error { return e.Err }

// IsCrossDevice 判断 err 是否为跨盘（EXDEV）错误。
func IsCrossDevice(err error) bool {
	var e *CrossDeviceError
	return errors.As(err, &e)
}

// Rename 把 src 移动到 dst，且绝不覆盖已存在的 dst。
//
// - dst 已存在：返回的错误满足 errors.Is(err, fs.ErrExist)，src 保持不变
// - EXDEV：返回 *CrossDeviceError
//
// fsys 为 OS 文件系统时走 renameFunc（Linux 上是 renameat2 RENAME_NOREPLACE），
// 其它 afero 实现退化为 “Lstat 检查 + Rename”。
func Rename(fsys afero.Fs, src, dst string) error {
	var err error
	if IsOsFs(fsys) {
		err = renameFunc(src, dst)
	} else {
		err = renameCheckThenMoveFs(fsys, src, dst)
	}
	if err != nil {
		if isEXDEV(err) {
			return &CrossDeviceError{Src: src, Dst: dst, Err: err}
		}
		return err
	}
	return nil
}

// IsOsFs 判断 fsys 是否直接由操作系统文件系统支撑。
func IsOsFs(fsys afero.Fs) bool {
	_, ok := fsys.(*afero.OsFs)
	return ok
}

// Exists 用 Lstat 语义判断 path 是否存在（任何类型，包括悬空的符号链接）。
func Exists(fsys afero.Fs, path string) (bool, error) {
	_, err := lstat(fsys, path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// EnsureDir 确保 dir 是目录：不存在则创建；已存在的目录视为成功。
func EnsureDir(fsys afero.Fs, dir string) error {
	fi, err := fsys.Stat(dir)
	if err == nil {
		if fi.IsDir() {
			return nil
		}
		return &PathTypeConflictError{Path: dir, Want: "dir", Got: "file"}
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return nil
}

func renameCheckThenMoveFs(fsys afero.Fs, src, dst string) error {
	ok, err := Exists(fsys, dst)
	if err != nil {
		return err
	}
	if ok {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: fs.ErrExist}
	}
	return fsys.Rename(src, dst)
}

func lstat(fsys afero.Fs, path string) (os.FileInfo, error) {
	if ls, ok := fsys.(afero.Lstater); ok {
		fi, _, err := ls.LstatIfPossible(path)
		return fi, err
	}
	return fsys.Stat(path)
}
