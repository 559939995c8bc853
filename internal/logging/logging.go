// Package logging builds the zerolog loggers used by the CLI.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Verbosity levels accepted by New.
const (
	Quiet   = -1
	Normal  = 0
	Verbose = 1
	Debug   = 2
)

// Level maps a verbosity to a zerolog level: quiet shows errors only, the
// default shows warnings, and each -v step lowers the threshold.
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= Quiet:
		return zerolog.ErrorLevel
	case verbosity == Normal:
		return zerolog.WarnLevel
	case verbosity == Verbose:
		return zerolog.InfoLevel
	case verbosity == Debug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// New returns a console logger writing to w. Colors are used only when
// color is true; callers decide that from the terminal.
func New(w io.Writer, verbosity int, color bool) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    !color,
	}
	logger := zerolog.New(console).Level(Level(verbosity)).With().Timestamp().Logger()

	// Caller information for debug and trace levels
	if verbosity >= Debug {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// Component returns a child logger tagged with the given component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
