package planner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/John-Robertt/monthsort/internal/domain"
)

func TestPlanMove_Paths(t *testing.T) {
	root := t.TempDir()
	c := domain.Candidate{AbsPath: filepath.Join(root, "b.JPG"), Name: "b.JPG", Ext: ".jpg"}
	ts := time.Date(2024, 2, 2, 13, 30, 45, 0, time.UTC)

	p := PlanMove(root, c, ts, time.UTC)

	if p.SrcAbs != c.AbsPath {
		t.Fatalf("SrcAbs 不符合预期：%q", p.SrcAbs)
	}
	if want := filepath.Join(root, "2024_02"); p.BucketAbs != want {
		t.Fatalf("期望 bucket=%q，实际=%q", want, p.BucketAbs)
	}
	if want := filepath.Join(root, "2024_02", "20240202_133045.jpg"); p.DstAbs != want {
		t.Fatalf("期望 dst=%q，实际=%q", want, p.DstAbs)
	}
	if p.Identity.Name != "20240202_133045.jpg" || p.Identity.Bucket != "2024_02" {
		t.Fatalf("Identity 不符合预期：%+v", p.Identity)
	}
}

func TestDestOccupied(t *testing.T) {
	root := t.TempDir()
	c := domain.Candidate{AbsPath: filepath.Join(root, "a.jpg"), Name: "a.jpg", Ext: ".jpg"}
	p := PlanMove(root, c, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), time.UTC)

	osfs := afero.NewOsFs()
	occupied, err := DestOccupied(osfs, p)
	if err != nil || occupied {
		t.Fatalf("期望未占用：occupied=%v err=%v", occupied, err)
	}

	if err := os.MkdirAll(p.BucketAbs, 0o755); err != nil {
		t.Fatalf("创建目录失败：%v", err)
	}
	if err := os.WriteFile(p.DstAbs, []byte("exists"), 0o644); err != nil {
		t.Fatalf("写入文件失败：%v", err)
	}

	occupied, err = DestOccupied(osfs, p)
	if err != nil || !occupied {
		t.Fatalf("期望已占用：occupied=%v err=%v", occupied, err)
	}
}
