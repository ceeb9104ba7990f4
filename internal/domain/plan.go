package domain

// Identity 是由扩展名与创建时间推导出的新文件名与月份目录名。
type Identity struct {
	Name   string // "20240101_120000.jpg"
	Bucket string // "2024_01"
}

// MovePlan 规划一次文件移动（只描述路径；是否真正移动由执行阶段决定）。
type MovePlan struct {
	SrcAbs    string
	BucketAbs string
	DstAbs    string

	Identity Identity
}
