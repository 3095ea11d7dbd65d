package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	lg   *zap.Logger
	once sync.Once
)

// Init builds the singleton zap.Logger. Outside production it switches to the
// development config with colored levels.
func Init(env string) error {
	var err error
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		if env != "production" {
			cfg = zap.NewDevelopmentConfig()
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		lg, err = cfg.Build()
	})

	return err
}

// L returns the configured logger, falling back to a development logger when
// Init was never called (tests).
func L() *zap.Logger {
	if lg == nil {
		lz, _ := zap.NewDevelopment()
		return lz
	}
	return lg
}
