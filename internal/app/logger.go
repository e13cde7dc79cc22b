package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// logLevels maps the accepted -log-level values.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLogLevel returns the slog level for a case-insensitive level name.
func ParseLogLevel(s string) (slog.Level, error) {
	level, ok := logLevels[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", s)
	}
	return level, nil
}

// newLogger builds an isolated logger writing to outW. Unknown levels fall
// back to warn so a report on stdout is not interleaved with info chatter.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, err := ParseLogLevel(levelStr)
	if err != nil {
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}
