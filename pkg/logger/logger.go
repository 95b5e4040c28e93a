package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey string

const (
	ContextKeyTraceID  contextKey = "trace_id"
	ContextKeyImportID contextKey = "import_id"
	ContextKeyUserID   contextKey = "user_id"
)

type Logger struct {
	zap *zap.Logger
}

func New(level string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	zapLogger, err := config.Build()
	if err != nil {
		zapLogger = zap.NewNop()
	}
	return &Logger{zap: zapLogger}
}

func NewNop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, traceID)
}

func WithImportID(ctx context.Context, importID string) context.Context {
	return context.WithValue(ctx, ContextKeyImportID, importID)
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ContextKeyUserID, userID)
}

func GetTraceID(ctx context.Context) string {
	return stringValue(ctx, ContextKeyTraceID)
}

func GetImportID(ctx context.Context) string {
	return stringValue(ctx, ContextKeyImportID)
}

func GetUserID(ctx context.Context) string {
	return stringValue(ctx, ContextKeyUserID)
}

func stringValue(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

func (l *Logger) buildFields(ctx context.Context, fields ...interface{}) []zap.Field {
	zapFields := []zap.Field{}

	if traceID := GetTraceID(ctx); traceID != "" {
		zapFields = append(zapFields, zap.String("trace_id", traceID))
	}
	if userID := GetUserID(ctx); userID != "" {
		zapFields = append(zapFields, zap.String("user_id", userID))
	}
	if importID := GetImportID(ctx); importID != "" {
		zapFields = append(zapFields, zap.String("import_id", importID))
	}

	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		zapFields = append(zapFields, zap.Any(key, fields[i+1]))
	}

	return zapFields
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Debug(msg, l.buildFields(ctx, fields...)...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Info(msg, l.buildFields(ctx, fields...)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Warn(msg, l.buildFields(ctx, fields...)...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Error(msg, l.buildFields(ctx, fields...)...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Fatal(msg, l.buildFields(ctx, fields...)...)
}

func (l *Logger) Sync() error {
	return l.zap.Sync()
}
