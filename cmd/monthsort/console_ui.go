package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/John-Robertt/monthsort/internal/app/run"
	"github.com/John-Robertt/monthsort/internal/config"
	"github.com/John-Robertt/monthsort/internal/domain"
)

var _ run.Observer = (*consoleUI)(nil)

// consoleUI 把 run 的事件格式化为人类可读的行（stdout）。
// 颜色只在终端上出现：renderer 绑定输出 writer，非 TTY 时退化为纯文本。
type consoleUI struct {
	w io.Writer

	moved lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
	muted lipgloss.Style
}

func newConsoleUI(w io.Writer) *consoleUI {
	r := lipgloss.NewRenderer(w)
	return &consoleUI{
		w:     w,
		moved: r.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true),
		warn:  r.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true),
		fail:  r.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
		muted: r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}

func (u *consoleUI) OnStart(eff config.EffectiveConfig) {}

func (u *consoleUI) OnAbort(ab domain.Abort) {
	fmt.Fprintf(u.w, "%s %s\n", u.fail.Render("[错误]"), ab.Msg)
}

func (u *consoleUI) OnPhaseDone(name string, fields map[string]any, dur time.Duration) {
	if name != "scan" {
		return
	}
	n, _ := fields["files"].(int)
	fmt.Fprintf(u.w, "检测到文件数：%d\n", n)
}

func (u *consoleUI) OnItemDone(idx, total int, res domain.ItemResult, dur time.Duration) {
	switch {
	case res.Status == domain.StatusMoved:
		fmt.Fprintf(u.w, "%s %s -> %s\n", u.moved.Render("[移动]"), filepath.Base(res.Src), res.Dst)
	case res.IsDuplicate():
		fmt.Fprintf(u.w, "%s %s 已存在，跳过\n", u.warn.Render("[警告]"), res.Dst)
	default:
		fmt.Fprintf(u.w, "%s %s 移动失败：%s\n", u.fail.Render("[错误]"), res.Src, res.ErrorMsg)
	}
}

func (u *consoleUI) OnFinish(rr domain.RunReport) {
	fmt.Fprintf(u.w, "完成：%d 件移动，%d 件跳过\n", rr.Summary.Moved, rr.Summary.Skipped)
	skipped := rr.SkippedFiles()
	if len(skipped) == 0 {
		return
	}
	fmt.Fprintln(u.w, "跳过的文件：")
	for _, s := range skipped {
		fmt.Fprintf(u.w, "  %s\n", u.muted.Render(s))
	}
}
