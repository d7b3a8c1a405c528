// Package logging configures structured logging with tint.
//
// The terminal belongs to the UI while tipsplit runs, so logs normally go
// to a file:
//
//	closer, err := logging.SetupFile(".tipsplit/tipsplit.log", false)
//	defer closer.Close()
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// SetupWithLevel configures colored logging to stderr at the given level.
func SetupWithLevel(level slog.Level) {
	SetupWriter(os.Stderr, level, false)
}

// SetupWriter configures logging to w. Colors are stripped when noColor is set,
// which is what a log file wants.
func SetupWriter(w io.Writer, level slog.Level, noColor bool) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
			NoColor:    noColor,
		}),
	))
}

// SetupFile appends logs to path, creating parent directories as needed.
// The special path "stderr" logs to the console instead. verbose forces the
// debug level; otherwise LOG_LEVEL decides.
func SetupFile(path string, verbose bool) (io.Closer, error) {
	level := levelFromEnv()
	if verbose {
		level = slog.LevelDebug
	}

	if path == "" || path == "stderr" {
		SetupWithLevel(level)
		return io.NopCloser(nil), nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	SetupWriter(f, level, true)
	return f, nil
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
