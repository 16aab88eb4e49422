package log

import (
	"context"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxLogKeyType struct{}

var CtxLogKey = ctxLogKeyType{}

// Debug logs a message at DebugLevel.
func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}

// With creates a child logger and adds structured context to it.
func With(fields ...zap.Field) *MLogger {
	return &MLogger{Logger: L().With(fields...)}
}

func SetLevel(l zapcore.Level) {
	Level().SetLevel(l)
}

func GetLevel() zapcore.Level {
	return Level().Level()
}

// WithFields returns a context carrying a logger with fields attached
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	return context.WithValue(ctx, CtxLogKey, Ctx(ctx).With(fields...))
}

// WithExchange tags every log line in ctx with the source exchange and market
func WithExchange(ctx context.Context, exgName, market string) context.Context {
	return WithFields(ctx, zap.String("exg", exgName), zap.String("market", market))
}

// Ctx returns the logger attached in ctx, or the global one
func Ctx(ctx context.Context) *MLogger {
	if ctx != nil {
		if ctxLogger, ok := ctx.Value(CtxLogKey).(*MLogger); ok {
			return ctxLogger
		}
	}
	return &MLogger{Logger: L()}
}
