package run

import (
	"time"

	"github.com/John-Robertt/monthsort/internal/config"
	"github.com/John-Robertt/monthsort/internal/domain"
)

// Observer 用于把“阶段/条目结果/汇总”从核心执行流程中解耦出来。
//
// 约束：
// - run 包只负责发事件，不做任何输出；文本格式由 CLI 决定，测试可替换为记录型实现。
// - 事件在执行 goroutine 中同步调用（本工具不并发）。
// - 目标目录不满足前置条件时只会收到 OnStart + OnAbort；
//   运行中被取消时会先收到 OnAbort，再收到 OnFinish。
type Observer interface {
	// OnStart 在 ExecuteWithObserver 开始时调用。
	OnStart(eff config.EffectiveConfig)
	// OnAbort 在运行级错误（目标目录无效、扫描失败、取消）时调用。
	OnAbort(ab domain.Abort)
	// OnPhaseDone 在阶段结束时调用（目前只有 "scan"，fields: files）。
	OnPhaseDone(name string, fields map[string]any, dur time.Duration)
	// OnItemDone 在某个文件处理完成时调用（moved / skipped）。
	OnItemDone(idx, total int, res domain.ItemResult, dur time.Duration)
	// OnFinish 在所有候选处理完后调用，rr 已 Finalize。
	OnFinish(rr domain.RunReport)
}

// Observers 把多个 Observer 合并为一个（按顺序分发；nil 会被忽略）。
func Observers(obs ...Observer) Observer {
	out := make(multiObserver, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	}
	return out
}

type multiObserver []Observer

func (m multiObserver) OnStart(eff config.EffectiveConfig) {
	for _, o := range m {
		o.OnStart(eff)
	}
}

func (m multiObserver) OnAbort(ab domain.Abort) {
	for _, o := range m {
		o.OnAbort(ab)
	}
}

func (m multiObserver) OnPhaseDone(name string, fields map[string]any, dur time.Duration) {
	for _, o := range m {
		o.OnPhaseDone(name, fields, dur)
	}
}

func (m multiObserver) OnItemDone(idx, total int, res domain.ItemResult, dur time.Duration) {
	for _, o := range m {
		o.OnItemDone(idx, total, res, dur)
	}
}

func (m multiObserver) OnFinish(rr domain.RunReport) {
	for _, o := range m {
		o.OnFinish(rr)
	}
}
