// Package log provides category-tagged structured logging for bizperiod.
//
// Calls take a Category followed by a message and alternating key/value pairs:
//
//	log.Debug(log.CatConfig, "Loaded config file", "path", path)
//	log.ErrorErr(log.CatCLI, "Command failed", err, "command", name)
//
// Output goes to stderr by default at warn level; Init reconfigures both.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Category groups log lines by subsystem.
type Category string

const (
	CatConfig Category = "config"
	CatParse  Category = "parse"
	CatCLI    Category = "cli"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(newLogger(os.Stderr, slog.LevelWarn))
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel converts "debug", "info", "warn"/"warning" or "error" into a level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Init directs log output to w at the given level.
func Init(w io.Writer, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	logger.Store(newLogger(w, lvl))
	return nil
}

func emit(level slog.Level, cat Category, msg string, args []any) {
	logger.Load().Log(context.Background(), level, msg, append([]any{"cat", string(cat)}, args...)...)
}

// Debug logs at debug level.
func Debug(cat Category, msg string, args ...any) { emit(slog.LevelDebug, cat, msg, args) }

// Info logs at info level.
func Info(cat Category, msg string, args ...any) { emit(slog.LevelInfo, cat, msg, args) }

// Warn logs at warn level.
func Warn(cat Category, msg string, args ...any) { emit(slog.LevelWarn, cat, msg, args) }

// Error logs at error level.
func Error(cat Category, msg string, args ...any) { emit(slog.LevelError, cat, msg, args) }

// ErrorErr logs err at error level under the "error" key.
func ErrorErr(cat Category, msg string, err error, args ...any) {
	emit(slog.LevelError, cat, msg, append([]any{"error", err}, args...))
}
