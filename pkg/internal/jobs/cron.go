// Package jobs 负责注册与实现业务定时任务（基于 scheduler）.
package jobs

import (
	"context"
	"fmt"
	"time"

	ctxPkg "github.com/yeisme/immovault/pkg/context"
	"github.com/yeisme/immovault/pkg/internal/service"
	"github.com/yeisme/immovault/pkg/internal/storage"
	"github.com/yeisme/immovault/pkg/log"
	"github.com/yeisme/immovault/pkg/scheduler"
)

// RegisterCronJobs 配置业务定时任务：
//   - 每天 03:00 执行回收站保留期清扫（删除 30 天前移入回收站的房源）
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	// 将 storage manager 注入到 context，便于 service 使用
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	return sched.AddCron(JobTrashRetentionSweep, CronTrashRetentionSweep, func(ctx context.Context) {
		RunRetentionSweep(ctx)
	}, baseCtx)
}

// RunRetentionSweep 执行一轮保留期清扫. 也被 sweep 子命令直接调用.
func RunRetentionSweep(ctx context.Context) {
	l := log.Logger().With().Str("job", JobTrashRetentionSweep).Logger()

	before := time.Now().AddDate(0, 0, -service.RetentionDays)

	svc := service.NewTrashService(ctx)

	n, err := svc.PurgeExpired(ctx, before)
	if err != nil {
		l.Error().Err(err).Msg("retention sweep failed")
		return
	}

	if n > 0 {
		l.Info().Int("purged", n).Time("before", before).Msg("retention sweep done")
	}
}
