// Package logging configures the zerolog logger used across the cookbook.
// Output is a human-readable console writer by default; LOG_FORMAT=json
// switches to structured JSON for non-interactive use.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var defaultLogger zerolog.Logger

func init() {
	defaultLogger = New(os.Stderr)
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// New creates a logger writing to w, pretty-printed when w is a terminal.
func New(w io.Writer) zerolog.Logger {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) && os.Getenv("LOG_FORMAT") != "json" {
		w = zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: "2006-01-02 15:04:05",
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}
	return zerolog.New(w).
		Level(ParseLevel(os.Getenv("COOKBOOK_LOG_LEVEL"))).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetLevel adjusts the minimum level of the default logger.
func SetLevel(level string) {
	defaultLogger = defaultLogger.Level(ParseLevel(level))
}
