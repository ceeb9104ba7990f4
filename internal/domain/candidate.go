package domain

// Candidate 描述扫描得到的一个待处理文件（只做 stat，不读内容）。
//
// 不变量：
// - AbsPath 是 clean + absolute，且直接位于目标目录下
// - Ext 已转为小写（".jpg"）
type Candidate struct {
	AbsPath string
	Name    string // 原文件名（保留大小写）
	Ext     string
	Size    int64
}
