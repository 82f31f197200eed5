package reference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"climastore.GO/config"
	"climastore.GO/core/cache"
	"climastore.GO/core/logger"
	"climastore.GO/core/metrics"
	"climastore.GO/model/entity"
)

const (
	// CacheTag groups every in-process reference-data entry.
	CacheTag = "refdata"

	localKey   = "refdata:set"
	redisKey   = "climastore:refdata"
	versionKey = "climastore:refdata:version"
)

// ReferenceRepository reads the brand, product type, BTU and energy class
// tables. Reads go through the in-process cache, then Redis, then the
// database. Cached snapshots carry the write version they were read at and
// are served only while that version is current. With Redis the version is
// shared, so a write on one process retires the snapshots of every other.
type ReferenceRepository struct {
	db      *gorm.DB
	cache   *cache.Cache
	redis   *redis.Client
	ttl     time.Duration
	version atomic.Int64
}

// snapshot is the cached form of a reference set.
type snapshot struct {
	Version int64               `json:"version"`
	Set     entity.ReferenceSet `json:"set"`
}

var (
	instance *ReferenceRepository
	once     sync.Once
)

// GetReferenceRepository returns the process-wide repository wired to the
// global cache and Redis client.
func GetReferenceRepository(db *gorm.DB) *ReferenceRepository {
	once.Do(func() {
		instance = NewReferenceRepository(db, cache.GetInstance(), config.RedisClient, config.App().RefDataTTL)
	})
	return instance
}

// NewReferenceRepository builds a repository. rdb may be nil.
func NewReferenceRepository(db *gorm.DB, c *cache.Cache, rdb *redis.Client, ttl time.Duration) *ReferenceRepository {
	return &ReferenceRepository{db: db, cache: c, redis: rdb, ttl: ttl}
}

// Load returns the current reference snapshot.
func (r *ReferenceRepository) Load(ctx context.Context) (entity.ReferenceSet, error) {
	v, known := r.currentVersion(ctx)
	if known {
		if cached, ok := r.cache.Get(localKey); ok {
			if snap := cached.(snapshot); snap.Version == v {
				metrics.RefDataCache.WithLabelValues("local").Inc()
				return snap.Set, nil
			}
		}
		if snap, ok := r.readRedis(ctx); ok && snap.Version == v {
			metrics.RefDataCache.WithLabelValues("redis").Inc()
			r.cache.Set(localKey, snap, r.ttl, []string{CacheTag})
			return snap.Set, nil
		}
	}

	set, err := r.loadDB(ctx)
	if err != nil {
		return entity.ReferenceSet{}, err
	}
	metrics.RefDataCache.WithLabelValues("db").Inc()
	if known {
		r.store(ctx, v, set)
	}
	return set, nil
}

// Refresh reads the tables and repopulates both cache layers unless a write
// happened while reading.
func (r *ReferenceRepository) Refresh(ctx context.Context) (entity.ReferenceSet, error) {
	v, known := r.currentVersion(ctx)
	set, err := r.loadDB(ctx)
	if err != nil {
		return entity.ReferenceSet{}, err
	}
	if known {
		r.store(ctx, v, set)
	}
	return set, nil
}

// Invalidate bumps the write version and drops the cached snapshot from both
// layers.
func (r *ReferenceRepository) Invalidate(ctx context.Context) error {
	r.version.Add(1)
	dropped := r.cache.DeleteByTag(CacheTag)
	logger.L().Debug("refdata invalidated", zap.Int("local_keys", dropped))
	if r.redis == nil {
		return nil
	}
	if err := r.redis.Incr(ctx, versionKey).Err(); err != nil {
		return fmt.Errorf("refdata redis version bump: %w", err)
	}
	if err := r.redis.Del(ctx, redisKey).Err(); err != nil {
		return fmt.Errorf("refdata redis invalidate: %w", err)
	}
	return nil
}

// currentVersion returns the write version. Without Redis it is the
// process-local counter. known is false when Redis cannot be read, in which
// case nothing is served from or written to the caches.
func (r *ReferenceRepository) currentVersion(ctx context.Context) (v int64, known bool) {
	if r.redis == nil {
		return r.version.Load(), true
	}
	v, err := r.redis.Get(ctx, versionKey).Int64()
	switch {
	case err == nil:
		return v, true
	case errors.Is(err, redis.Nil):
		return 0, true
	}
	logger.L().Warn("refdata redis version read failed", zap.Error(err))
	return 0, false
}

func (r *ReferenceRepository) readRedis(ctx context.Context) (snapshot, bool) {
	var snap snapshot
	if r.redis == nil {
		return snap, false
	}
	data, err := r.redis.Get(ctx, redisKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.L().Warn("refdata redis read failed", zap.Error(err))
		}
		return snap, false
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, false
	}
	return snap, true
}

// store caches set as read at version v. It reports false and caches nothing
// when the version moved on since v.
func (r *ReferenceRepository) store(ctx context.Context, v int64, set entity.ReferenceSet) bool {
	if cur, known := r.currentVersion(ctx); !known || cur != v {
		logger.L().Debug("refdata changed while loading, not cached", zap.Int64("read_version", v))
		return false
	}
	snap := snapshot{Version: v, Set: set}
	r.cache.Set(localKey, snap, r.ttl, []string{CacheTag})
	if r.redis != nil {
		if data, jerr := json.Marshal(snap); jerr == nil {
			if err := r.redis.Set(ctx, redisKey, data, r.ttl).Err(); err != nil {
				logger.L().Warn("refdata redis write failed", zap.Error(err))
			}
		}
	}
	return true
}

func (r *ReferenceRepository) loadDB(ctx context.Context) (entity.ReferenceSet, error) {
	var set entity.ReferenceSet
	db := r.db.WithContext(ctx)
	if err := db.Order("id ASC").Find(&set.Brands).Error; err != nil {
		return set, fmt.Errorf("load brands: %w", err)
	}
	if err := db.Order("id ASC").Find(&set.ProductTypes).Error; err != nil {
		return set, fmt.Errorf("load product types: %w", err)
	}
	if err := db.Order("id ASC").Find(&set.BTUs).Error; err != nil {
		return set, fmt.Errorf("load btus: %w", err)
	}
	if err := db.Order("id ASC").Find(&set.EnergyClasses).Error; err != nil {
		return set, fmt.Errorf("load energy classes: %w", err)
	}
	return set, nil
}

func (r *ReferenceRepository) SaveBrand(ctx context.Context, b *entity.Brand) error {
	return r.save(ctx, b)
}

func (r *ReferenceRepository) SaveProductType(ctx context.Context, t *entity.ProductType) error {
	return r.save(ctx, t)
}

func (r *ReferenceRepository) SaveBTU(ctx context.Context, b *entity.BTU) error {
	return r.save(ctx, b)
}

func (r *ReferenceRepository) SaveEnergyClass(ctx context.Context, c *entity.EnergyClass) error {
	return r.save(ctx, c)
}

// Exists reports whether a row of model's table has the given id.
func (r *ReferenceRepository) Exists(ctx context.Context, model interface{}, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// save writes the row, then invalidates whether or not the write succeeded.
func (r *ReferenceRepository) save(ctx context.Context, row interface{}) error {
	err := r.db.WithContext(ctx).Save(row).Error
	if ierr := r.Invalidate(ctx); ierr != nil {
		logger.L().Warn("refdata invalidate after write failed", zap.Error(ierr))
	}
	if err != nil {
		return fmt.Errorf("save reference row: %w", err)
	}
	return nil
}
