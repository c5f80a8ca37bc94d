// Package logger holds the process logger. Every package logs through
// Sugar() so the binary decides the sink and level exactly once.
package logger

import (
	"os"
	"sync"

	"github.com/expki/go-constructsim/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	lock   sync.RWMutex
	logger *zap.Logger = zap.NewNop()
	sugar  *zap.SugaredLogger
)

// Initialize replaces the no-op logger with a console logger at the
// configured level. Safe to call once at startup before any goroutines log.
func Initialize(level config.LogLevel) {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		level.Zap(),
	)
	lock.Lock()
	logger = zap.New(core)
	sugar = logger.Sugar()
	lock.Unlock()
}

// Logger returns the current structured logger.
func Logger() *zap.Logger {
	lock.RLock()
	defer lock.RUnlock()
	return logger
}

// Sugar returns the current sugared logger.
func Sugar() *zap.SugaredLogger {
	lock.RLock()
	defer lock.RUnlock()
	if sugar == nil {
		return logger.Sugar()
	}
	return sugar
}

// Sync flushes buffered log entries. Called on shutdown.
func Sync() {
	lock.RLock()
	defer lock.RUnlock()
	_ = logger.Sync()
}
