package cron

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"climastore.GO/core/logger"
)

// StartCron schedules every registered job and starts the scheduler.
// Overlapping runs of the same job are skipped.
func StartCron() (*cron.Cron, error) {
	c := cron.New(cron.WithChain(
		cron.Recover(cron.DefaultLogger),
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	for name, j := range Jobs() {
		name := name
		if _, err := c.AddFunc(j.Schedule, func() {
			// RunJob logs and counts failures
			_ = RunJob(context.Background(), name)
		}); err != nil {
			return nil, fmt.Errorf("register job %s: %w", name, err)
		}
		logger.L().Info("cron job scheduled", zap.String("job", name), zap.String("schedule", j.Schedule))
	}
	c.Start()
	return c, nil
}
