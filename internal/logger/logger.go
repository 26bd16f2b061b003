package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init builds the global logger for env. Production logs JSON at info,
// anything else logs colored console output at debug. LOG_LEVEL overrides
// the level in either mode.
func Init(env string) {
	cfg := newConfig(env, os.Getenv("LOG_LEVEL"))

	var err error
	log, err = cfg.Build(zap.AddCaller())
	if err != nil {
		panic(err)
	}
	log = log.With(zap.String("service", "boldstore"), zap.String("env", envName(env)))
}

func newConfig(env, level string) zap.Config {
	var cfg zap.Config

	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.MessageKey = "message"
		cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if lvl, err := zap.ParseAtomicLevel(strings.TrimSpace(level)); err == nil && level != "" {
		cfg.Level = lvl
	}

	return cfg
}

func envName(env string) string {
	if env == "" {
		return "development"
	}
	return env
}

// L returns the global logger, building it from APP_ENV on first use.
func L() *zap.Logger {
	if log == nil {
		Init(os.Getenv("APP_ENV"))
	}
	return log
}

// Sync flushes logs.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
