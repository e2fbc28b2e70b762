// Package observability provides structured logging for the client.
package observability

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger to provide specialized logging methods.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is the default logger instance for the application.
var GlobalLogger *Logger

func init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// SetLevel replaces the global logger with one filtering at the given level.
func SetLevel(level slog.Level) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// ClientLogger provides structured logging for API client operations.
type ClientLogger struct {
	backend string
	logger  *Logger
}

// NewClientLogger creates a ClientLogger for the given backend
// implementation ("mock" or "remote").
func NewClientLogger(backend string) *ClientLogger {
	return &ClientLogger{backend: backend, logger: GlobalLogger}
}

// LogCall logs a completed API operation at debug level.
func (l *ClientLogger) LogCall(ctx context.Context, op string, fields map[string]interface{}) {
	attrs := []any{
		slog.String("backend", l.backend),
		slog.String("operation", op),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.DebugContext(ctx, "api call", attrs...)
}

// LogError logs a failed API operation.
func (l *ClientLogger) LogError(ctx context.Context, op string, err error) {
	l.logger.ErrorContext(ctx, "api error",
		slog.String("backend", l.backend),
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// StoreLogger provides structured logging for the application data layer.
type StoreLogger struct {
	logger *Logger
}

// NewStoreLogger creates a StoreLogger.
func NewStoreLogger() *StoreLogger {
	return &StoreLogger{logger: GlobalLogger}
}

// LogRefreshError logs a refresh failure. Refresh errors are cached, not
// returned, so this is the only place they surface.
func (l *StoreLogger) LogRefreshError(ctx context.Context, collection string, err error) {
	l.logger.WarnContext(ctx, "refresh failed",
		slog.String("collection", collection),
		slog.String("error", err.Error()),
	)
}

// LogMutation logs a completed data-layer mutation.
func (l *StoreLogger) LogMutation(ctx context.Context, op string, fields map[string]interface{}) {
	attrs := []any{slog.String("operation", op)}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.InfoContext(ctx, "store mutation", attrs...)
}
