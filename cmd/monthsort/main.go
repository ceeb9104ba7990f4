package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/John-Robertt/monthsort/internal/app/run"
	"github.com/John-Robertt/monthsort/internal/config"
	"github.com/John-Robertt/monthsort/internal/logging"
)

func main() {
	// Ctrl-C：当前文件处理完后停止，剩余文件保持原样（重新运行即可继续）。
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute 运行 CLI 并返回退出码：
// 0 = 完成（包括有文件被跳过）或 --help；1 = 目标目录无效/运行中止；2 = 参数错误。
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	code := 0
	cmd := newRootCmd(stdout, stderr, &code)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "参数错误：%v\n\n", err)
		fmt.Fprint(stderr, cmd.UsageString())
		return 2
	}
	return code
}

func newRootCmd(stdout, stderr io.Writer, code *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monthsort <folder>",
		Short: "按创建时间重命名文件并移动到月份目录",
		Long: `按创建时间重命名 <folder> 下的文件，并移动到 YYYY_MM 月份目录。

新文件名：YYYYMMDD_HHMMSS.<ext>（扩展名转小写，本地时区）。
只处理 <folder> 的直接子文件（不递归），目标扩展名：
  图片  .jpg .jpeg .png .gif .bmp .webp .tiff
  视频  .mp4 .mov .avi .mkv
  文档  .pdf .docx .xlsx .pptx .txt .csv
  压缩  .zip .rar
目标文件已存在时跳过（源文件保持不动）。`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			*code = runFolder(cmd.Context(), args[0], stdout, stderr)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func runFolder(ctx context.Context, folder string, stdout, stderr io.Writer) int {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(stderr, "读取当前目录失败：%v\n", err)
		return 1
	}

	eff, err := config.LoadEffective(cwd, config.CLIArgs{Path: folder})
	if err != nil {
		fmt.Fprintf(stderr, "参数错误：%v\n", err)
		return 2
	}

	logger := pickLogger(stdout, stderr)
	defer func() { _ = logger.Sync() }()

	obs := run.Observers(newConsoleUI(stdout), newLogObserver(logger))
	rr := run.ExecuteWithObserver(ctx, eff, run.Options{}, obs)
	if rr.Aborted != nil {
		return 1
	}
	return 0
}

// pickLogger：stdout 是交互终端时，控制台报告已足够，诊断日志关闭；
// stdout 被重定向时，跳过/错误额外以结构化日志写到 stderr，便于脚本排查。
func pickLogger(stdout, stderr io.Writer) *zap.Logger {
	if f, ok := stdout.(*os.File); ok && isTTY(f) {
		return zap.NewNop()
	}
	return logging.New(stderr, zapcore.WarnLevel)
}

func isTTY(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
