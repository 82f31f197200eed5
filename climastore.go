//go:build !cli
// +build !cli

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"go.uber.org/zap"

	"climastore.GO/config"
	"climastore.GO/core/logger"
	"climastore.GO/server"
)

func main() {
	config.LoadEnv()
	cfg := config.App()
	log := logger.Init(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	config.InitRedis()
	if config.PingRedis() {
		log.Info("redis connection successful")
	} else {
		log.Warn("redis not configured or not reachable, reference data cached in-process only")
	}

	db, err := config.NewDB()
	if err != nil {
		log.Fatal("failed to connect to DB", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get DB instance", zap.Error(err))
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	log.Info("database connection successful")

	e := server.New(db)

	figure.NewFigure(cfg.AppName, "small", true).Print()
	fmt.Println()

	go func() {
		log.Info("server running", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
