package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/John-Robertt/monthsort/internal/domain"
)

const (
	// ErrCodeMissingPath 表示没有给出目标目录。
	ErrCodeMissingPath = "target_missing"
	// ErrCodeNotFound 表示目标目录不存在。
	ErrCodeNotFound = domain.ErrCodeTargetNotFound
	// ErrCodeNotDir 表示目标路径存在但不是目录。
	ErrCodeNotDir = domain.ErrCodeTargetNotDir
	// ErrCodeInvalid 表示目标路径无法读取/解析。
	ErrCodeInvalid = "target_invalid"
)

// CLIArgs 只包含 CLI 暴露的唯一入口：目标目录。
type CLIArgs struct {
	Path string
}

// EffectiveConfig 是规范化后的最终配置（执行层直接消费，不再做二次默认）。
type EffectiveConfig struct {
	// Path 是 clean + absolute 的目标目录。
	Path string

	// Extensions 是本次运行的目标扩展名集合；显式传给扫描阶段，而不是全局状态。
	Extensions domain.ExtensionSet
}

// Error 是配置阶段的结构化错误（带 error_code）。
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeMissingPath:
		return fmt.Sprintf("%s：未指定目标目录", e.Code)
	case ErrCodeNotFound:
		return fmt.Sprintf("%s：指定目录不存在：%s", e.Code, e.Path)
	case ErrCodeNotDir:
		return fmt.Sprintf("%s：指定路径不是目录：%s", e.Code, e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s：%q：%v", e.Code, e.Path, e.Err)
		}
		return fmt.Sprintf("%s：%q", e.Code, e.Path)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；若不是 *Error 则返回空串。
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// LoadEffective 把 CLI 参数规范化为最终配置。
//
// - path：相对路径以 cwd 为基准，结果 clean + absolute
// - extensions：内置集合（不暴露 flag/env/配置文件）
//
// 注意：这里不检查目录是否存在；该前置条件属于执行阶段（见 CheckDir）。
func LoadEffective(cwd string, cli CLIArgs) (EffectiveConfig, error) {
	if strings.TrimSpace(cli.Path) == "" {
		return EffectiveConfig{}, &Error{Code: ErrCodeMissingPath}
	}

	cwdAbs, err := filepath.Abs(cwd)
	if err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cwd, Err: err}
	}

	return EffectiveConfig{
		Path:       absCleanFrom(cwdAbs, cli.Path),
		Extensions: domain.DefaultExtensions(),
	}, nil
}

// CheckDir 确认 path 存在且是目录（跟随符号链接）。
func CheckDir(fsys afero.Fs, path string) error {
	fi, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Error{Code: ErrCodeNotFound, Path: path, Err: err}
		}
		return &Error{Code: ErrCodeInvalid, Path: path, Err: err}
	}
	if !fi.IsDir() {
		return &Error{Code: ErrCodeNotDir, Path: path}
	}
	return nil
}

// absCleanFrom 以 base 为基准，把 p 变为 clean + absolute。
// - p 若已是绝对路径：直接 Clean
// - p 若是相对路径：Join(base, p) 后 Clean
func absCleanFrom(base, p string) string {
	p = filepath.Clean(strings.TrimSpace(p))
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Clean(filepath.Join(base, p))
}
