package run

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/afero"

	"github.com/John-Robertt/monthsort/internal/app/planner"
	"github.com/John-Robertt/monthsort/internal/config"
	"github.com/John-Robertt/monthsort/internal/domain"
	"github.com/John-Robertt/monthsort/internal/infra/fsx"
	"github.com/John-Robertt/monthsort/internal/scan"
)

// TimestampFunc 读取 path 的创建时间。
type TimestampFunc func(fsys afero.Fs, path string) (time.Time, error)

// Options 是执行层的可替换依赖（零值即生产默认值）。
type Options struct {
	// Fs 为 nil 时使用 afero.NewOsFs()。
	Fs afero.Fs
	// Timestamp 为 nil 时使用 CreationTime。
	Timestamp TimestampFunc
	// Location 是推导文件名时使用的时区；nil 表示 time.Local。
	Location *time.Location
}

func (o Options) withDefaults() Options {
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Timestamp == nil {
		o.Timestamp = CreationTime
	}
	return o
}

// CreationTime 是默认的 TimestampFunc：Stat（跟随符号链接）后读取创建时间。
func CreationTime(fsys afero.Fs, path string) (time.Time, error) {
	fi, err := fsys.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return fsx.CreationTime(path, fi)
}

// Execute 执行一次整理，并返回 RunReport。
// 单个文件的失败只会降级为 skipped 条目，不影响其他文件。
func Execute(ctx context.Context, eff config.EffectiveConfig, opts Options) domain.RunReport {
	return ExecuteWithObserver(ctx, eff, opts, nil)
}

// ExecuteWithObserver 与 Execute 相同，但允许传入 Observer 以输出进度/结果（由上层决定是否启用）。
func ExecuteWithObserver(ctx context.Context, eff config.EffectiveConfig, opts Options, obs Observer) domain.RunReport {
	opts = opts.withDefaults()
	started := time.Now().UTC()

	if obs != nil {
		obs.OnStart(eff)
	}

	rr := domain.RunReport{
		Path:      eff.Path,
		StartedAt: started,
		Items:     make([]domain.ItemResult, 0, 64),
	}

	// 前置条件：目标必须是已存在的目录；否则不做任何文件系统改动。
	if err := config.CheckDir(opts.Fs, eff.Path); err != nil {
		code := config.Code(err)
		if code == "" {
			code = domain.ErrCodeTargetNotFound
		}
		return aborted(rr, obs, domain.Abort{Code: code, Msg: err.Error()})
	}

	scanStarted := time.Now()
	cands, err := scan.ScanCandidates(opts.Fs, eff.Path, eff.Extensions)
	if err != nil {
		return aborted(rr, obs, domain.Abort{Code: domain.ErrCodeScanFailed, Msg: fmt.Sprintf("扫描失败：%v", err)})
	}
	rr.Summary.Found = len(cands)

	if obs != nil {
		obs.OnPhaseDone("scan", map[string]any{
			"files": len(cands),
		}, time.Since(scanStarted))
	}

	// 逐个串行处理；顺序即扫描顺序（同名冲突先到先得）。
	for i, c := range cands {
		if err := ctx.Err(); err != nil {
			ab := domain.Abort{Code: domain.ErrCodeCanceled, Msg: fmt.Sprintf("已取消，剩余 %d 个文件未处理：%v", len(cands)-i, err)}
			rr.Aborted = &ab
			if obs != nil {
				obs.OnAbort(ab)
			}
			break
		}

		oneStarted := time.Now()
		res := moveOne(opts, eff.Path, c)
		rr.Items = append(rr.Items, res)
		if obs != nil {
			obs.OnItemDone(i+1, len(cands), res, time.Since(oneStarted))
		}
	}

	rr.FinishedAt = time.Now().UTC()
	rr.Finalize()
	if obs != nil {
		obs.OnFinish(rr)
	}
	return rr
}

func aborted(rr domain.RunReport, obs Observer, ab domain.Abort) domain.RunReport {
	rr.Aborted = &ab
	rr.FinishedAt = time.Now().UTC()
	rr.Finalize()
	if obs != nil {
		obs.OnAbort(ab)
	}
	return rr
}

// moveOne 处理单个候选：读时间 -> 推导 -> 建月份目录 -> 冲突检查 -> 移动。
// 任何失败都保留源文件不动。
func moveOne(opts Options, root string, c domain.Candidate) domain.ItemResult {
	item := domain.ItemResult{
		Src:    c.AbsPath,
		Status: domain.StatusSkipped, // 成功时覆盖
	}

	created, err := opts.Timestamp(opts.Fs, c.AbsPath)
	if err != nil {
		item.Reason = domain.ReasonTimestampFailed
		item.ErrorMsg = fmt.Sprintf("读取创建时间失败：%v", err)
		return item
	}

	p := planner.PlanMove(root, c, created, opts.Location)
	item.Dst = p.DstAbs

	if err := fsx.EnsureDir(opts.Fs, p.BucketAbs); err != nil {
		if fsx.IsPathTypeConflict(err) {
			item.Reason = domain.ReasonTargetConflict
		} else {
			item.Reason = domain.ReasonIOFailed
		}
		item.ErrorMsg = err.Error()
		return item
	}

	occupied, err := planner.DestOccupied(opts.Fs, p)
	if err != nil {
		item.Reason = domain.ReasonIOFailed
		item.ErrorMsg = fmt.Sprintf("检查目标失败：%v", err)
		return item
	}
	if occupied {
		item.Reason = domain.ReasonDuplicate
		item.ErrorMsg = fmt.Sprintf("%s 已存在", p.DstAbs)
		return item
	}

	if err := fsx.Rename(opts.Fs, p.SrcAbs, p.DstAbs); err != nil {
		// 检查与移动之间目标被别人占用：按重复处理。
		if errors.Is(err, fs.ErrExist) {
			item.Reason = domain.ReasonDuplicate
			item.ErrorMsg = fmt.Sprintf("%s 已存在", p.DstAbs)
			return item
		}
		item.Reason = domain.ReasonMoveFailed
		item.ErrorMsg = err.Error()
		return item
	}

	item.Status = domain.StatusMoved
	return item
}
