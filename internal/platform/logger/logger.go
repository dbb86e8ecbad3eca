package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger. Handlers and services take
// *slog.Logger so tests can swap in slog.Default or a discard handler.
func New() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("MUSTER_DEBUG") == "true" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
