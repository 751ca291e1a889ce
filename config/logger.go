package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process-wide zap logger. JSON output in production,
// console encoding otherwise; level from LOG_LEVEL.
func NewLogger() (*zap.Logger, func()) {
	var level zapcore.Level
	if err := level.Set(getEnv("LOG_LEVEL", "info")); err != nil {
		level = zapcore.InfoLevel
	}

	var enc zapcore.Encoder
	if getEnv("APP_ENV", "development") == "production" {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.TimeKey = "ts"
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), level)
	logger := zap.New(core, zap.AddCaller())
	cleanup := func() { _ = logger.Sync() }
	return logger, cleanup
}
