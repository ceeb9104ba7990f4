package planner

import (
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/John-Robertt/monthsort/internal/domain"
	"github.com/John-Robertt/monthsort/internal/infra/fsx"
	"github.com/John-Robertt/monthsort/internal/naming"
)

// PlanMove 基于候选文件 + 创建时间生成确定性的移动计划（不做任何写入/移动）。
//
// 目标路径固定为 <root>/<YYYY_MM>/<YYYYMMDD_HHMMSS><ext>。
func PlanMove(root string, c domain.Candidate, created time.Time, loc *time.Location) domain.MovePlan {
	id := naming.DeriveFor(c, created, loc)
	bucket := filepath.Join(filepath.Clean(root), id.Bucket)
	return domain.MovePlan{
		SrcAbs:    c.AbsPath,
		BucketAbs: bucket,
		DstAbs:    filepath.Join(bucket, id.Name),
		Identity:  id,
	}
}

// DestOccupied 判断计划的目标路径是否已被占用（任何类型，不要求是本次运行产生的）。
// 只做 Lstat，不读内容。
func DestOccupied(fsys afero.Fs, p domain.MovePlan) (bool, error) {
	return fsx.Exists(fsys, p.DstAbs)
}
