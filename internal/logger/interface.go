package logger

import "context"

// Logger is the printf-style logger shared by every pipeline stage.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
	// With returns a child logger that adds key/value pairs to every line.
	With(keysAndValues ...interface{}) Logger
	Sync() error
}
