package main

import (
	"log/slog"
	"os"
	"strings"
)

// setupLogging installs the default JSON logger. The flag wins over
// the configured level.
func setupLogging(configLevel string) {
	level := configLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}

	var l slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
	slog.SetDefault(logger)
}
