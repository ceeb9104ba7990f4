package domain

import (
	"sort"
	"strings"
)

// defaultExtensions 是内置的目标扩展名（小写，含前导 '.'）。
var defaultExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp", ".tiff",
	".mp4", ".mov", ".avi", ".mkv",
	".pdf", ".docx", ".xlsx", ".pptx", ".txt", ".csv",
	".zip", ".rar",
}

// ExtensionSet 是不可变的扩展名集合，比较时忽略大小写。
//
// 零值是空集合（不匹配任何文件）。
type ExtensionSet struct {
	m map[string]struct{}
}

// NewExtensionSet 构造集合；输入会被规范化为小写并补齐前导 '.'，空串被忽略。
func NewExtensionSet(exts ...string) ExtensionSet {
	m := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" || e == "." {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		m[e] = struct{}{}
	}
	return ExtensionSet{m: m}
}

// DefaultExtensions 返回内置目标扩展名集合（每次调用构造新值）。
func DefaultExtensions() ExtensionSet {
	return NewExtensionSet(defaultExtensions...)
}

// Contains 判断 ext（例如 ".JPG"）是否在集合内。
func (s ExtensionSet) Contains(ext string) bool {
	if ext == "" {
		return false
	}
	_, ok := s.m[strings.ToLower(ext)]
	return ok
}

func (s ExtensionSet) Len() int { return len(s.m) }

// List 返回排序后的扩展名副本。
func (s ExtensionSet) List() []string {
	out := make([]string, 0, len(s.m))
	for e := range s.m {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
