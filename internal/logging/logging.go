// Package logging centralizes zerolog setup: pretty console output in
// development, JSON in production, with a per-component "component" field
// so Store/importer/persistence/transport logs can be filtered independently.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the root logger. pretty selects a human-readable console
// writer (development) over structured JSON (production).
func New(levelStr string, pretty bool) zerolog.Logger {
	var output io.Writer = os.Stdout
	if pretty {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}
	return zerolog.New(output).
		Level(ParseLevel(levelStr)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a config string into a zerolog.Level, defaulting to
// info on anything unrecognized rather than erroring.
func ParseLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Component returns a child logger tagged with name, e.g. logging.Component(
// root, "store") for the Project Store's own log lines.
func Component(root zerolog.Logger, name string) zerolog.Logger {
	return root.With().Str("component", name).Logger()
}
