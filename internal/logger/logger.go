package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when the configured level is empty or unknown
const DefaultLevel = zerolog.InfoLevel

// New creates a JSON logger writing to w
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewConsole creates a human readable logger on stderr
func NewConsole(level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return New(consoleWriter, level)
}

// Component returns a child logger tagged with the component name
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// ParseLevel converts a config value such as "debug" or "WARN" into a level
func ParseLevel(value string) zerolog.Level {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return DefaultLevel
	}
	if value == "warning" {
		value = "warn"
	}
	level, err := zerolog.ParseLevel(value)
	if err != nil || level == zerolog.NoLevel {
		return DefaultLevel
	}
	return level
}
