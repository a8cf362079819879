// Package logging provides structured logging using zerolog.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the global logger instance. It discards everything until Init is
// called, so importing packages stay silent when used as a library.
var Logger = zerolog.New(io.Discard)

// Init configures the global logger with human-readable console output
// written to out. Verbose lowers the threshold to debug.
func Init(out io.Writer, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
	}

	Logger = zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Debug starts a new debug level log message.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info starts a new info level log message.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn starts a new warn level log message.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error starts a new error level log message.
func Error() *zerolog.Event {
	return Logger.Error()
}
