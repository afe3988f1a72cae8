// Package log is the leveled logger used throughout avada. Nothing is logged
// until an output or handler is configured: the terminal is usually the
// process's stdout, so logs must be routed somewhere else.
package log

import (
	"context"
	"io"
	"os"
	"sync/atomic"

	"golang.org/x/exp/slog"
)

const (
	LevelTrace = slog.Level(-8)
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level  = new(slog.LevelVar)
	logger atomic.Pointer[slog.Logger]
)

var levelNames = map[slog.Leveler]string{
	LevelTrace: "TRACE",
}

func init() {
	level.Set(LevelError)
	SetOutput(io.Discard)
}

// SetLevel sets the minimum level written by the handler installed with
// SetOutput
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetOutput logs text records to w at the level chosen with SetLevel
func SetOutput(w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevel,
	}
	SetLogger(slog.New(slog.NewTextHandler(w, opts)))
}

// SetHandler routes all logs to h. Levels are filtered by h
func SetHandler(h slog.Handler) {
	SetLogger(slog.New(h))
}

// SetLogger routes all logs to l
func SetLogger(l *slog.Logger) {
	logger.Store(l.With("pid", os.Getpid()))
}

// Logger returns the current logger
func Logger() *slog.Logger {
	return logger.Load()
}

func replaceLevel(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	lvl, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	if name, exists := levelNames[lvl]; exists {
		a.Value = slog.StringValue(name)
	}
	return a
}

func Trace(msg string, args ...any) {
	logger.Load().Log(context.Background(), LevelTrace, msg, args...)
}

func Debug(msg string, args ...any) {
	logger.Load().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	logger.Load().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Load().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	logger.Load().Error(msg, args...)
}
