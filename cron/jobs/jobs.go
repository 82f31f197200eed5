package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"climastore.GO/config"
	"climastore.GO/core/logger"
	"climastore.GO/cron"
	"climastore.GO/model/repository/reference"
	"climastore.GO/service/catalog"
	"climastore.GO/service/search"
)

const (
	JobRefDataWarm   = "refdata:warm"
	JobSearchReindex = "search:reindex"
)

func init() {
	cron.Register(JobRefDataWarm, cron.Job{
		Schedule: config.CronSchedule(JobRefDataWarm, "@every 5m"),
		Timeout:  30 * time.Second,
		Run: func(ctx context.Context) error {
			db, err := config.SharedDB()
			if err != nil {
				return fmt.Errorf("database unavailable: %w", err)
			}
			return WarmReferenceData(ctx, reference.GetReferenceRepository(db))
		},
	})
	cron.Register(JobSearchReindex, cron.Job{
		Schedule: config.CronSchedule(JobSearchReindex, "@every 1h"),
		Timeout:  10 * time.Minute,
		Run: func(ctx context.Context) error {
			db, err := config.SharedDB()
			if err != nil {
				return fmt.Errorf("database unavailable: %w", err)
			}
			return ReindexCatalog(ctx, catalog.NewService(db))
		},
	})
}

// WarmReferenceData re-reads the reference tables into both cache layers.
func WarmReferenceData(ctx context.Context, refs *reference.ReferenceRepository) error {
	set, err := refs.Refresh(ctx)
	if err != nil {
		return err
	}
	logger.L().Info("reference data warmed",
		zap.Int("brands", len(set.Brands)),
		zap.Int("types", len(set.ProductTypes)),
		zap.Int("btus", len(set.BTUs)),
		zap.Int("energy_classes", len(set.EnergyClasses)),
	)
	return nil
}

// ReindexCatalog rebuilds the search index. It is a no-op without a cluster.
func ReindexCatalog(ctx context.Context, svc *catalog.Service) error {
	n, err := svc.Reindex(ctx)
	if errors.Is(err, search.ErrNotConfigured) {
		logger.L().Debug("search reindex skipped: elasticsearch not configured")
		return nil
	}
	if err != nil {
		return err
	}
	logger.L().Info("search index rebuilt", zap.Int("documents", n))
	return nil
}
