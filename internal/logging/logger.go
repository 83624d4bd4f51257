package logging

import (
	"log/slog"
	"os"
)

// Logger is the small capability interface the orchestrator logs
// through. Key-value pairs follow slog's convention: alternating
// key, value arguments.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// SlogLogger adapts a *slog.Logger to the Logger interface.
type SlogLogger struct {
	inner *slog.Logger
}

// NewSlogLogger builds a SlogLogger writing JSON records to stderr at
// the given level, matching the structured-logging setup the CLI uses
// for its own stdout output.
func NewSlogLogger(level slog.Level) SlogLogger {
	return SlogLogger{inner: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

func (l SlogLogger) Debug(msg string, kv ...any) { l.inner.Debug(msg, kv...) }
func (l SlogLogger) Info(msg string, kv ...any)  { l.inner.Info(msg, kv...) }
func (l SlogLogger) Warn(msg string, kv ...any)  { l.inner.Warn(msg, kv...) }
func (l SlogLogger) Error(msg string, kv ...any) { l.inner.Error(msg, kv...) }
