package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
)

// newLogger creates a charm logger with "HH:MM:SS.ms" timestamps writing
// to w at level.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// newSlog wraps a charm logger as the slog handler every package logs
// through.
func newSlog(w io.Writer, level charmlog.Level) *slog.Logger {
	return slog.New(newLogger(w, level))
}

// parseLevel maps a config level name to a charm level. --verbose wins.
func parseLevel(name string, verbose bool) (charmlog.Level, error) {
	if verbose {
		return charmlog.DebugLevel, nil
	}
	if name == "" {
		return charmlog.InfoLevel, nil
	}
	level, err := charmlog.ParseLevel(name)
	if err != nil {
		return charmlog.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// openLogFile opens path for appending, creating its directory. The TUI
// owns the terminal, so nothing may log to stderr while it runs.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by the root command, or a
// discard logger.
func loggerFromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
