package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared logger for the whole module. Call Init before use.
var Log *zap.Logger

// Init sets up the global logger with a console encoder.
// Safe to call more than once; later calls are ignored.
func Init() {
	if Log != nil {
		return
	}
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	logger, err := config.Build()
	if err != nil {
		Log = zap.NewNop()
		return
	}
	Log = logger
}

// SetLevel adjusts the minimum logged level at runtime.
func SetLevel(level zapcore.Level) {
	if Log == nil {
		Init()
	}
	Log = Log.WithOptions(zap.IncreaseLevel(level))
}
