package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// New builds a zap logger. format "json" selects the production encoder,
// anything else the development console encoder.
func New(levelStr, format string) *zap.Logger {
	level := zapcore.InfoLevel
	switch levelStr {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// Init builds the process logger from LOG_LEVEL / LOG_FORMAT style values and installs it.
func Init(levelStr, format string) *zap.Logger {
	l := New(levelStr, format)
	Set(l)
	return l
}

// Set replaces the process logger.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = l
}

// L returns the process logger (a no-op logger until Init is called).
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Nop installs a no-op logger, for tests and quiet CLI runs.
func Nop() *zap.Logger {
	l := zap.NewNop()
	Set(l)
	return l
}
