package contract

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns the request tracing logger. It writes human-readable
// debug lines to stderr when verbose is set and discards everything otherwise.
func NewLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	zcfg.DisableStacktrace = true
	logger, err := zcfg.Build()
	if err != nil {
		LogWarn("Cannot build verbose logger", err)
		return zap.NewNop()
	}
	return logger
}
