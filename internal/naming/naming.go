// Package naming 负责由创建时间推导新文件名与月份目录名（纯函数，无 I/O）。
package naming

import (
	"strings"
	"time"

	"github.com/John-Robertt/monthsort/internal/domain"
)

const (
	nameLayout   = "20060102_150405"
	bucketLayout = "2006_01"
)

// Derive 把 ts 解释为 loc 时区的本地时间（loc 为 nil 时使用 time.Local），
// 返回 "YYYYMMDD_HHMMSS"+小写扩展名 与 "YYYY_MM"。
//
// 亚秒部分被截断：同一秒、同扩展名的两个文件会得到相同的新文件名。
func Derive(ext string, ts time.Time, loc *time.Location) domain.Identity {
	if loc == nil {
		loc = time.Local
	}
	t := ts.In(loc)
	return domain.Identity{
		Name:   t.Format(nameLayout) + strings.ToLower(ext),
		Bucket: t.Format(bucketLayout),
	}
}

// DeriveFor 是 Derive 的候选文件版本（只使用候选的扩展名）。
func DeriveFor(c domain.Candidate, ts time.Time, loc *time.Location) domain.Identity {
	return Derive(c.Ext, ts, loc)
}
