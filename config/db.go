package config

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the catalog database. MYSQL_DSN wins over the discrete MYSQL_* settings.
func NewDB() (*gorm.DB, error) {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=Local",
			os.Getenv("MYSQL_USER"),
			os.Getenv("MYSQL_PASS"),
			GetEnv("MYSQL_HOST", "127.0.0.1"),
			GetEnv("MYSQL_PORT", "3306"),
			GetEnv("MYSQL_DB", "climastore"),
		)
	}

	logMode := logger.Warn
	switch os.Getenv("GORM_LOG") {
	case "off":
		logMode = logger.Silent
	case "info":
		logMode = logger.Info
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logMode,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(getEnvInt("MYSQL_MAX_OPEN_CONNS", 20))
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	return db, nil
}

var (
	sharedDB     *gorm.DB
	sharedDBErr  error
	sharedDBOnce sync.Once
)

// SharedDB opens the database once per process, for long-running jobs.
func SharedDB() (*gorm.DB, error) {
	sharedDBOnce.Do(func() {
		sharedDB, sharedDBErr = NewDB()
	})
	return sharedDB, sharedDBErr
}
