package logger

import (
	"log/slog"
	"os"
)

// Log is usable before Init so packages can log from tests.
var Log = slog.Default()

func Init(mode string) {
	level := slog.LevelDebug
	if mode == "release" {
		level = slog.LevelInfo
	}
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
