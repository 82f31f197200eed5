package cron

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"climastore.GO/core/logger"
	"climastore.GO/core/metrics"
	"climastore.GO/core/registry"
)

// Job is one scheduled maintenance task. Run gets a context bounded by
// Timeout when Timeout is positive.
type Job struct {
	Schedule string
	Timeout  time.Duration
	Run      func(ctx context.Context) error
}

var mu sync.Mutex

// Register adds a job. Call from init(). Panics if the registry is locked or
// the name is taken.
func Register(name string, job Job) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCron) {
		panic("cron/registry: locked (register only during init before StartCron)")
	}
	if job.Run == nil {
		panic("cron/registry: job " + name + " has no Run")
	}
	jobs := getJobs()
	if _, ok := jobs[name]; ok {
		panic("cron/registry: duplicate job " + name)
	}
	jobs[name] = job
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

// Unregister removes a job (for tests).
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)
	jobs := getJobs()
	delete(jobs, name)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

func getJobs() map[string]Job {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCron); ok && v != nil {
		return v.(map[string]Job)
	}
	return make(map[string]Job)
}

// Jobs returns a copy of the registered jobs and locks the registry.
func Jobs() map[string]Job {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Job)
	for k, v := range getJobs() {
		out[k] = v
	}
	if !registry.GlobalRegistry.IsLocked(registry.KeyRegistryCron) {
		registry.GlobalRegistry.Lock(registry.KeyRegistryCron)
	}
	return out
}

// Names returns the registered job names, sorted.
func Names() []string {
	jobs := Jobs()
	names := make([]string, 0, len(jobs))
	for n := range jobs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// RunJob runs one job now, bounded by its timeout, and records the outcome.
func RunJob(ctx context.Context, name string) error {
	job, ok := Jobs()[name]
	if !ok {
		return fmt.Errorf("unknown job: %s", name)
	}
	if job.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, job.Timeout)
		defer cancel()
	}

	start := time.Now()
	err := job.Run(ctx)
	log := logger.L().With(zap.String("job", name), zap.Duration("took", time.Since(start)))
	if err != nil {
		metrics.CronRuns.WithLabelValues(name, "error").Inc()
		log.Error("cron job failed", zap.Error(err))
		return fmt.Errorf("job %s: %w", name, err)
	}
	metrics.CronRuns.WithLabelValues(name, "ok").Inc()
	log.Debug("cron job done")
	return nil
}
