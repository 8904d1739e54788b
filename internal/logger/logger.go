package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const dispatchIDKey ctxKey = "dispatchID"

// InitLogger installs the default slog logger writing to stdout
func InitLogger(cfg Config) {
	InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter installs the default slog logger writing to w
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(cfg.BaseAttributes())

	slog.SetDefault(slog.New(handler))
}

// GenerateDispatchID creates a new UUID for correlating one event's processing.
func GenerateDispatchID() string {
	return uuid.NewString()
}

// WithDispatchID returns a new context containing the dispatch ID.
func WithDispatchID(ctx context.Context, dispatchID string) context.Context {
	return context.WithValue(ctx, dispatchIDKey, dispatchID)
}

// DispatchIDFromContext extracts the dispatch ID from the context, if present.
func DispatchIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(dispatchIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// GetDispatchID returns the dispatch ID or "" when none is set
func GetDispatchID(ctx context.Context) string {
	id, _ := DispatchIDFromContext(ctx)
	return id
}

// FromContext returns a logger that includes the dispatch_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if id, ok := DispatchIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyDispatchID, id)
	}
	return slog.Default()
}

// Info logs at info level on the default logger
func Info(msg string, args ...any) {
	slog.Default().Info(msg, args...)
}

// Warn logs at warn level on the default logger
func Warn(msg string, args ...any) {
	slog.Default().Warn(msg, args...)
}
