package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/John-Robertt/monthsort/internal/domain"
)

// ScanCandidates 列出 dir 的直接子项中扩展名命中 exts 的普通文件。
//
// 规则（硬约束）：
// - 不递归：子目录（包括已有的 YYYY_MM 月份目录）永远不是候选
// - 扩展名比较忽略大小写；无扩展名或未命中的文件静默忽略
// - 符号链接：目标是普通文件才算候选
// - 输出按文件名字典序（这也是同名冲突“先到先得”的顺序）
//
// 注意：扫描阶段只做 stat，不读文件内容。
func ScanCandidates(fsys afero.Fs, dir string, exts domain.ExtensionSet) ([]domain.Candidate, error) {
	dir = filepath.Clean(dir)

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Candidate, 0, len(entries))
	for _, fi := range entries {
		name := fi.Name()
		ext := filepath.Ext(name)
		if !exts.Contains(ext) {
			continue
		}

		path := filepath.Join(dir, name)
		st, ok := regularFile(fsys, path, fi)
		if !ok {
			continue
		}

		out = append(out, domain.Candidate{
			AbsPath: path,
			Name:    name,
			Ext:     strings.ToLower(ext),
			Size:    st.Size(),
		})
	}

	// afero.ReadDir 已按名字排序；这里再显式保证一次，不依赖实现细节。
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func regularFile(fsys afero.Fs, path string, fi os.FileInfo) (os.FileInfo, bool) {
	if fi.Mode().IsRegular() {
		return fi, true
	}
	if fi.Mode()&os.ModeSymlink == 0 {
		return nil, false
	}
	// 符号链接：跟随一次，悬空链接直接忽略。
	target, err := fsys.Stat(path)
	if err != nil || !target.Mode().IsRegular() {
		return nil, false
	}
	return target, true
}
