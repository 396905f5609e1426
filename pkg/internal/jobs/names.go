package jobs

// 任务名称常量，便于统一管理与引用.
const (
	JobTrashRetentionSweep = "trash.retention_sweep"
)

// Cron 表达式常量.
const (
	// 每天 03:00 清扫超过保留期的回收站房源
	CronTrashRetentionSweep = "0 3 * * *"
)
