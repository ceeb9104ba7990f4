package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/John-Robertt/monthsort/internal/app/run"
	"github.com/John-Robertt/monthsort/internal/config"
	"github.com/John-Robertt/monthsort/internal/domain"
)

var _ run.Observer = (*logObserver)(nil)

// logObserver 把事件写成结构化日志：跳过为 warn，失败/中止为 error，其余为 debug。
type logObserver struct {
	log *zap.Logger
}

func newLogObserver(log *zap.Logger) *logObserver {
	if log == nil {
		log = zap.NewNop()
	}
	return &logObserver{log: log}
}

func (o *logObserver) OnStart(eff config.EffectiveConfig) {
	o.log.Debug("开始整理", zap.String("path", eff.Path), zap.Strings("extensions", eff.Extensions.List()))
}

func (o *logObserver) OnAbort(ab domain.Abort) {
	o.log.Error("运行中止", zap.String("code", ab.Code), zap.String("error", ab.Msg))
}

func (o *logObserver) OnPhaseDone(name string, fields map[string]any, dur time.Duration) {
	o.log.Debug("阶段完成", zap.String("phase", name), zap.Any("fields", fields), zap.Duration("dur", dur))
}

func (o *logObserver) OnItemDone(idx, total int, res domain.ItemResult, dur time.Duration) {
	fields := []zap.Field{
		zap.Int("idx", idx),
		zap.Int("total", total),
		zap.String("src", res.Src),
		zap.String("dst", res.Dst),
	}
	switch {
	case res.Status == domain.StatusMoved:
		o.log.Debug("已移动", fields...)
	case res.IsDuplicate():
		o.log.Warn("目标已存在，跳过", append(fields, zap.String("reason", res.Reason))...)
	default:
		o.log.Error("处理失败，跳过", append(fields, zap.String("reason", res.Reason), zap.String("error", res.ErrorMsg))...)
	}
}

func (o *logObserver) OnFinish(rr domain.RunReport) {
	o.log.Debug("完成",
		zap.Int("found", rr.Summary.Found),
		zap.Int("moved", rr.Summary.Moved),
		zap.Int("skipped", rr.Summary.Skipped),
		zap.Duration("elapsed", rr.FinishedAt.Sub(rr.StartedAt)),
	)
}
