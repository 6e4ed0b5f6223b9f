// Package logger wraps zerolog behind a small structured logging surface
// shared by the library and its demo commands.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger struct {
	logger *zerolog.Logger
}

// New returns a JSON logger writing to stderr. isDebug lowers the level
// filter to debug.
func New(isDebug bool) *Logger {
	level := zerolog.InfoLevel
	if isDebug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	return &Logger{logger: &logger}
}

// NewConsole returns a human-readable logger for interactive tools. tag
// marks the emitting component in every line.
func NewConsole(isDebug bool, tag string) *Logger {
	level := zerolog.InfoLevel
	if isDebug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05.0000"}
	logger := zerolog.New(output).Level(level).With().Str("tag", tag).Timestamp().Logger()
	return &Logger{logger: &logger}
}

// Default returns a logger built on the zerolog global logger.
func Default() *Logger { return &Logger{logger: &log.Logger} }

// Output duplicates the logger and sets w as its output.
func (l *Logger) Output(w io.Writer) *Logger {
	logger := l.logger.Output(w)
	return &Logger{logger: &logger}
}

// Extend adds context fields to a copy of the logger.
func (l *Logger) Extend(ctx zerolog.Context) *Logger {
	logger := ctx.Logger()
	return &Logger{logger: &logger}
}

// With creates a child context for Extend.
func (l *Logger) With() zerolog.Context { return l.logger.With() }

// Debug starts a new message with debug level.
// You must call Msg on the returned event in order to send the event.
func (l *Logger) Debug() *zerolog.Event { return l.logger.Debug() }

// Info starts a new message with info level.
// You must call Msg on the returned event in order to send the event.
func (l *Logger) Info() *zerolog.Event { return l.logger.Info() }

// Warn starts a new message with warn level.
// You must call Msg on the returned event in order to send the event.
func (l *Logger) Warn() *zerolog.Event { return l.logger.Warn() }

// Error starts a new message with error level.
func (l *Logger) Error() *zerolog.Event { return l.logger.Error() }

// Fatal starts a new message with fatal level. The os.Exit(1) function
// is called by the Msg method.
func (l *Logger) Fatal() *zerolog.Event { return l.logger.Fatal() }

// Printf sends a log event using debug level and no extra field.
// Arguments are handled in the manner of fmt.Printf.
func (l *Logger) Printf(format string, v ...any) { l.logger.Printf(format, v...) }
