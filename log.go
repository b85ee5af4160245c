package lazyseq

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	// By default, don't output any logs.
	SetLogger(nil)
}

// Log returns the package logger. Delegation, collapsing walks and
// teardown of recursive generators are traced at debug level.
func Log() *slog.Logger {
	return defaultLogger.Load()
}

// SetLogger sets the package logger. A nil logger discards everything.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	defaultLogger.Store(l)
}

func debugEnabled() bool {
	return Log().Enabled(context.Background(), slog.LevelDebug)
}
