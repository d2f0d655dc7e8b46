// Package logger installs the process-wide slog default: JSON to stderr,
// info level unless LOG_LEVEL=debug.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

func Init() {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	slog.SetDefault(slog.New(handler))
}

func levelFromEnv() slog.Level {
	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
