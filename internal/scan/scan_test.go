package scan

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"

	"github.com/John-Robertt/monthsort/internal/domain"
)

func TestScanCandidates_NonRecursiveAndExtFilter(t *testing.T) {
	root := t.TempDir()

	touch(t, filepath.Join(root, "a.jpg"))
	touch(t, filepath.Join(root, "c.txt"))
	touch(t, filepath.Join(root, "d.exe"))
	touch(t, filepath.Join(root, "noext"))
	// 子目录及其内容永远不是候选。
	touch(t, filepath.Join(root, "2024_01", "20240101_120000.jpg"))
	touch(t, filepath.Join(root, "nested", "x.png"))
	// 名字像图片的目录也不是候选。
	if err := os.Mkdir(filepath.Join(root, "dir.jpg"), 0o755); err != nil {
		t.Fatalf("创建目录失败：%v", err)
	}

	got, err := ScanCandidates(afero.NewOsFs(), root, domain.DefaultExtensions())
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	names := candidateNames(got)
	if len(names) != 2 || names[0] != "a.jpg" || names[1] != "c.txt" {
		t.Fatalf("候选不符合预期：%v", names)
	}
	if got[0].AbsPath != filepath.Join(root, "a.jpg") {
		t.Fatalf("AbsPath 不符合预期：%q", got[0].AbsPath)
	}
}

func TestScanCandidates_ExtCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "A.JPG"))
	touch(t, filepath.Join(root, "b.Mp4"))

	got, err := ScanCandidates(afero.NewOsFs(), root, domain.DefaultExtensions())
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if len(got) != 2 {
		t.Fatalf("期望 2 个候选，实际 %d", len(got))
	}
	if got[0].Name != "A.JPG" || got[0].Ext != ".jpg" {
		t.Fatalf("期望 name=A.JPG ext=.jpg，实际 %+v", got[0])
	}
	if got[1].Ext != ".mp4" {
		t.Fatalf("期望 ext=.mp4，实际 %q", got[1].Ext)
	}
}

func TestScanCandidates_LexicographicOrder(t *testing.T) {
	mem := afero.NewMemMapFs()
	for _, n := range []string{"z.jpg", "b.png", "m.pdf", "a.zip"} {
		if err := afero.WriteFile(mem, "/in/"+n, []byte("x"), 0o644); err != nil {
			t.Fatalf("写入失败：%v", err)
		}
	}

	got, err := ScanCandidates(mem, "/in", domain.DefaultExtensions())
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	names := candidateNames(got)
	want := []string{"a.zip", "b.png", "m.pdf", "z.jpg"}
	for i := range want {
		if i >= len(names) || names[i] != want[i] {
			t.Fatalf("顺序不符合预期：got=%v want=%v", names, want)
		}
	}
}

func TestScanCandidates_CustomSet(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.jpg"))
	touch(t, filepath.Join(root, "b.heic"))

	got, err := ScanCandidates(afero.NewOsFs(), root, domain.NewExtensionSet(".heic"))
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if len(got) != 1 || got[0].Name != "b.heic" {
		t.Fatalf("候选不符合预期：%v", candidateNames(got))
	}
}

func TestScanCandidates_Symlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("windows 上创建符号链接需要额外权限")
	}
	root := t.TempDir()
	outside := t.TempDir()

	touch(t, filepath.Join(outside, "real.jpg"))
	if err := os.Symlink(filepath.Join(outside, "real.jpg"), filepath.Join(root, "link.jpg")); err != nil {
		t.Fatalf("创建符号链接失败：%v", err)
	}
	if err := os.Symlink(filepath.Join(outside, "missing.jpg"), filepath.Join(root, "dangling.jpg")); err != nil {
		t.Fatalf("创建符号链接失败：%v", err)
	}
	if err := os.Symlink(outside, filepath.Join(root, "dirlink.jpg")); err != nil {
		t.Fatalf("创建符号链接失败：%v", err)
	}

	got, err := ScanCandidates(afero.NewOsFs(), root, domain.DefaultExtensions())
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if names := candidateNames(got); len(names) != 1 || names[0] != "link.jpg" {
		t.Fatalf("只有指向普通文件的链接才是候选：%v", names)
	}
}

func TestScanCandidates_MissingDir(t *testing.T) {
	_, err := ScanCandidates(afero.NewOsFs(), filepath.Join(t.TempDir(), "nope"), domain.DefaultExtensions())
	if err == nil {
		t.Fatalf("期望错误，但得到 nil")
	}
}

func TestScanCandidates_Empty(t *testing.T) {
	got, err := ScanCandidates(afero.NewOsFs(), t.TempDir(), domain.DefaultExtensions())
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("期望 0 个候选，实际 %d", len(got))
	}
}

func candidateNames(cs []domain.Candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("创建目录失败：%v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("写入文件失败：%v", err)
	}
}
