// Package logger builds the zerolog loggers used across the application.
// Every component gets a child logger tagged with its name.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Field names shared by components
const (
	FieldComponent = "component"
	FieldSession   = "session"
	FieldURL       = "url"
	FieldState     = "state"
)

// DefaultLevel is used when no level or an unknown level is configured
const DefaultLevel = zerolog.InfoLevel

// New creates a logger writing JSON lines to writer
func New(writer io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(writer).
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
func Component(parent zerolog.Logger, name string) zerolog.Logger {
	return parent.With().Str(FieldComponent, name).Logger()
}

// ParseLevel parses a level name. Empty input yields DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return DefaultLevel, nil
	}
	if name == "warning" {
		name = "warn"
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return DefaultLevel, err
	}
	return level, nil
}
