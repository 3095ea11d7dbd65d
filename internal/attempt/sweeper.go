package attempt

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/heritage-horizon/portal/pkg/db"
	"github.com/heritage-horizon/portal/pkg/logger"
)

// StartSweeper periodically deletes incomplete attempts that outlived ttl.
// Sessions that navigated away or crashed leave their attempt behind; this is
// the cleanup policy for those rows.
func StartSweeper(ttl, interval time.Duration) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			cutoff := time.Now().Add(-ttl)
			result := db.DB.
				Where("status = ? AND played_at < ?", StatusIncomplete, cutoff).
				Delete(&Attempt{})
			if result.Error != nil {
				logger.L().Error("attempt sweep failed", zap.Error(result.Error))
				return
			}
			if result.RowsAffected > 0 {
				logger.L().Info("swept abandoned attempts", zap.Int64("count", result.RowsAffected))
			}
		}),
	)
}
