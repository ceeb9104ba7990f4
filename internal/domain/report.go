package domain

import (
	"time"
)

const (
	StatusMoved   = "moved"
	StatusSkipped = "skipped"
)

// 跳过原因（ItemResult.Reason）与中止原因（Abort.Code）。
const (
	ReasonDuplicate       = "duplicate"
	ReasonTimestampFailed = "timestamp_failed"
	ReasonTargetConflict  = "target_conflict"
	ReasonIOFailed        = "io_failed"
	ReasonMoveFailed      = "move_failed"

	ErrCodeTargetNotFound = "target_not_found"
	ErrCodeTargetNotDir   = "target_not_dir"
	ErrCodeScanFailed     = "scan_failed"
	ErrCodeCanceled       = "canceled"
)

// RunReport 是一次运行的结果。Items 的顺序就是处理顺序（同名冲突按先到先得）。
type RunReport struct {
	Path string

	StartedAt  time.Time
	FinishedAt time.Time

	// Aborted 非空表示运行在处理任何文件之前（或中途被取消时）终止。
	Aborted *Abort

	Summary ReportSummary
	Items   []ItemResult
}

type Abort struct {
	Code string
	Msg  string
}

type ReportSummary struct {
	Found   int
	Moved   int
	Skipped int
}

type ItemResult struct {
	Src string
	Dst string

	Status   string
	Reason   string
	ErrorMsg string
}

// IsDuplicate 表示因目标已存在而跳过。
func (it ItemResult) IsDuplicate() bool {
	return it.Status == StatusSkipped && it.Reason == ReasonDuplicate
}

// Finalize 做两件事：
// 1) 时间统一为 UTC
// 2) summary 的 moved/skipped 由 items 计算得出（Found 由执行阶段填写）
//
// 注意：这里刻意不排序，Items 必须保持处理顺序。
func (r *RunReport) Finalize() {
	r.StartedAt = r.StartedAt.UTC()
	r.FinishedAt = r.FinishedAt.UTC()

	s := ReportSummary{Found: r.Summary.Found}
	for _, it := range r.Items {
		switch it.Status {
		case StatusMoved:
			s.Moved++
		case StatusSkipped:
			s.Skipped++
		}
	}
	r.Summary = s
}

// SkippedFiles 按处理顺序返回被跳过文件的源路径（重复与错误不区分）。
func (r RunReport) SkippedFiles() []string {
	out := make([]string, 0, r.Summary.Skipped)
	for _, it := range r.Items {
		if it.Status == StatusSkipped {
			out = append(out, it.Src)
		}
	}
	return out
}
