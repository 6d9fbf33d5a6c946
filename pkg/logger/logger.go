package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "1.0.0"

// NewLogger builds a development logger for dev and test environments and a JSON
// production logger otherwise.
func NewLogger(appEnv, service string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	switch appEnv {
	case "dev", "test":
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = cfg.Build()
	default:
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		logger, err = cfg.Build()
	}
	if err != nil {
		return nil, err
	}

	if service == "" {
		service = "github-wrapped"
	}

	return logger.With(zap.String("service", service), zap.String("version", version)), nil
}
