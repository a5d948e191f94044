package logging

import (
	"context"
	"log/slog"
	"sync"
)

var (
	defaultLogger = slog.Default()
	loggerMutex   sync.RWMutex
)

// Default returns the process-wide logger.
func Default() *slog.Logger {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger. Called once from the CLI
// Before hook after the logger configuration is resolved.
func SetDefault(logger *slog.Logger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	defaultLogger = logger
}

type ctxLoggerKey struct{}

// With embeds a logger into the context.
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From extracts the logger from the context, falling back to Default.
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return Default()
}
