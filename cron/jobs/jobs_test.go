package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"climastore.GO/core/cache"
	"climastore.GO/cron"
	"climastore.GO/model/entity"
	productRepo "climastore.GO/model/repository/product"
	"climastore.GO/model/repository/reference"
	"climastore.GO/service/catalog"
	"climastore.GO/service/search"
)

func jobsDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(entity.AllModels()...))
	require.NoError(t, db.Create(&entity.Brand{Name: "Daikin"}).Error)
	return db
}

func TestJobsRegistered(t *testing.T) {
	jobs := cron.Jobs()
	for _, name := range []string{JobRefDataWarm, JobSearchReindex} {
		j, ok := jobs[name]
		require.True(t, ok, name)
		assert.NotEmpty(t, j.Schedule)
		assert.Positive(t, j.Timeout)
	}
}

func TestWarmReferenceDataFillsRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	db := jobsDB(t)
	refs := reference.NewReferenceRepository(db, cache.NewCache(), rdb, time.Minute)

	require.NoError(t, WarmReferenceData(context.Background(), refs))
	keys := mr.Keys()
	assert.Len(t, keys, 1)

	// a warm run picks up rows written behind the cache
	require.NoError(t, db.Create(&entity.Brand{Name: "Gree"}).Error)
	require.NoError(t, WarmReferenceData(context.Background(), refs))
	set, err := refs.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, set.Brands, 2)
}

func TestReindexCatalogWithoutCluster(t *testing.T) {
	db := jobsDB(t)
	svc := &catalog.Service{
		Engine:   catalog.NewEngine(catalog.NewProjector(1, "EUR", ""), 10),
		Products: productRepo.NewProductRepository(db),
		Refs:     reference.NewReferenceRepository(db, cache.NewCache(), nil, time.Minute),
		Search:   search.NewSearchService("", "test"),
	}
	assert.NoError(t, ReindexCatalog(context.Background(), svc))
}
