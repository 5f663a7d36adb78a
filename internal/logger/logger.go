package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu   sync.Mutex
	base *zap.SugaredLogger
)

// Init builds the process logger. Idempotent; the first call wins.
// Call once at the top of main.
func Init() {
	mu.Lock()
	defer mu.Unlock()

	if base != nil {
		return
	}

	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	base = l.Sugar()
	base.Info("logger initialized")
}

func instance() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()

	if base == nil {
		l, _ := zap.NewProduction(zap.AddCallerSkip(1))
		base = l.Sugar()
	}
	return base
}

func flatten(fields map[string]any) []any {
	kvs := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		kvs = append(kvs, k, v)
	}
	return kvs
}

func Info(msg string, fields map[string]any) {
	instance().Infow(msg, flatten(fields)...)
}

func Warn(msg string, fields map[string]any) {
	instance().Warnw(msg, flatten(fields)...)
}

func Error(msg string, fields map[string]any) {
	instance().Errorw(msg, flatten(fields)...)
}

func Fatal(msg string, fields map[string]any) {
	instance().Fatalw(msg, flatten(fields)...)
}

// Sync flushes buffered log entries. Call with defer from main.
func Sync() {
	_ = instance().Sync()
}
