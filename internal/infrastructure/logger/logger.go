package logger

import (
	"log"

	"github.com/ocopmarket/order-gateway/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func MustInit(cfg *config.GatewayConfig) *zap.Logger {
	var zapCfg zap.Config

	if cfg.Env == "prod" {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "timestamp"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if cfg.LogConfig.LogFormat == "console" {
		zapCfg.Encoding = "console"
	}

	level, err := zapcore.ParseLevel(cfg.LogConfig.LogLevel)
	if err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	l, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	return l
}
