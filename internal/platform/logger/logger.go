package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel converts a configured level name (case-insensitive) into a
// slog.Level. The boolean is false when the name is not recognised, in which
// case slog.LevelInfo is returned.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup initializes and configures the application's logging system. It creates
// a structured JSON logger writing to w (stdout when w is nil) at the given level
// and sets it as the default logger for the application.
func Setup(levelName string, w io.Writer) (*slog.Logger, error) {
	if w == nil {
		w = os.Stdout
	}

	level, ok := ParseLevel(levelName)
	if !ok {
		// This will use the default handler (text output to stderr)
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", levelName,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)

	// Allows using the slog package functions directly (slog.Info, slog.Error, etc.)
	slog.SetDefault(logger)

	return logger, nil
}
