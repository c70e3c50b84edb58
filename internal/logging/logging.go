// Package logging configures the zerolog loggers used by the CLI and servers.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Format selects the log encoding.
type Format string

const (
	// FormatConsole writes human-readable lines, for interactive commands.
	FormatConsole Format = "console"

	// FormatJSON writes one JSON object per line, for the HTTP server.
	FormatJSON Format = "json"
)

// ParseLevel maps a config level name onto a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "off", "disabled":
		return zerolog.Disabled, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
}

// New builds a logger writing to w. verbose forces debug level regardless of
// level.
func New(w io.Writer, format Format, level string, verbose bool) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}

	out := w
	if format == FormatConsole {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
			NoColor:    true,
		}
	}

	return zerolog.New(out).Level(lvl).With().
		Timestamp().
		Str("app", "codecommenter").
		Logger(), nil
}
