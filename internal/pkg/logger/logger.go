package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log *zap.Logger
	mu  sync.RWMutex
)

// InitLogger initializes the global logger
func InitLogger(mode, level string) *zap.Logger {
	var logConfig zap.Config

	if mode == "prod" {
		// Production mode: structured JSON logs
		logConfig = zap.NewProductionConfig()
	} else {
		// Development mode: colorful, human-readable logs
		logConfig = zap.NewDevelopmentConfig()
		logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	logConfig.Level.SetLevel(lvl)

	built, err := logConfig.Build()
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	SetLogger(built)
	built.Info("Logger initialized", zap.String("level", lvl.String()), zap.String("mode", mode))
	return built
}

// SetLogger replaces the global logger
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l != nil {
		return l
	}

	// Fallback if not initialized
	fallback, err := zap.NewProduction()
	if err != nil {
		panic("Failed to create fallback logger: " + err.Error())
	}
	SetLogger(fallback)
	return fallback
}

// Named returns a child of the global logger
func Named(name string) *zap.Logger {
	return GetLogger().Named(name)
}
