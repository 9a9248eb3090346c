package logger

import (
	"io"
	"os"

	"github.com/showrunner-hq/showrunner-client/internal/config"
	"github.com/showrunner-hq/showrunner-client/pkg/transport"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Package-level logger to be used across packages after Init.
var S *zap.SugaredLogger

// Init initializes a zap SugaredLogger writing JSON to stderr.
// Stdout is reserved for RPC output.
func Init(cfg *config.Config) (*zap.SugaredLogger, error) {
	return InitWriter(cfg, os.Stderr)
}

// InitWriter is Init with an explicit destination.
func InitWriter(cfg *config.Config, w io.Writer) (*zap.SugaredLogger, error) {
	level := parseLevel(cfg.LogLevel)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	sugar := logger.Sugar()
	S = sugar
	return sugar, nil
}

func parseLevel(lvl string) zapcore.Level {
	switch lvl {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Close flushes any buffered loggers.
func Close() error {
	if S == nil {
		return nil
	}
	return S.Sync()
}

// New adapts a sugared logger to transport.Logger. A nil logger yields
// transport.NopLogger.
func New(s *zap.SugaredLogger) transport.Logger {
	if s == nil {
		return transport.NopLogger{}
	}
	return zapLogger{l: s.Desugar()}
}

type zapLogger struct {
	l *zap.Logger
}

func (z zapLogger) InfoObj(msg, key string, obj interface{})  { z.l.Info(msg, zap.Any(key, obj)) }
func (z zapLogger) DebugObj(msg, key string, obj interface{}) { z.l.Debug(msg, zap.Any(key, obj)) }
func (z zapLogger) WarnObj(msg, key string, obj interface{})  { z.l.Warn(msg, zap.Any(key, obj)) }
func (z zapLogger) ErrorObj(msg, key string, obj interface{}) { z.l.Error(msg, zap.Any(key, obj)) }

// global returns the logger installed by Init, or a no-op before Init runs.
func global() transport.Logger {
	return New(S)
}

// DebugObj logs obj under key through the logger installed by Init.
func DebugObj(msg, key string, obj interface{}) { global().DebugObj(msg, key, obj) }

// InfoObj logs obj under key through the logger installed by Init.
func InfoObj(msg, key string, obj interface{}) { global().InfoObj(msg, key, obj) }

// WarnObj logs obj under key through the logger installed by Init.
func WarnObj(msg, key string, obj interface{}) { global().WarnObj(msg, key, obj) }

// ErrorObj logs obj under key through the logger installed by Init.
func ErrorObj(msg, key string, obj interface{}) { global().ErrorObj(msg, key, obj) }
