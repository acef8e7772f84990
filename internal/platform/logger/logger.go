package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/flashcards-api/internal/config"
)

// Log formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatCI   = "ci"
)

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured logger writing to stdout
// and sets it as the default logger for the application.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	return New(os.Stdout, cfg.LogLevel, ResolveFormat(cfg.LogFormat)), nil
}

// ResolveFormat upgrades the default JSON format to the CI format when the
// process runs under a CI provider. Explicit text or ci formats are kept.
func ResolveFormat(format string) string {
	if strings.EqualFold(format, FormatJSON) && IsCI() {
		return FormatCI
	}
	return format
}

// New builds a logger writing to out. format is "json", "text" or "ci";
// anything else falls back to JSON. The logger also becomes the slog default.
func New(out io.Writer, levelName, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(levelName),
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case FormatText:
		handler = slog.NewTextHandler(out, opts)
	case FormatCI:
		opts.AddSource = true
		handler = NewCIHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a configured level name (case-insensitive) to a slog.Level.
// Unknown names resolve to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
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
