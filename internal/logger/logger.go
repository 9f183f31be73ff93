// Package logger sets up the structured logger shared by the srparse
// commands.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Init replaces the default logger with one that writes to stderr. Only
// warnings and errors are logged unless debug is set.
func Init(prefix string, debug, noColor bool) {
	log.SetDefault(New(os.Stderr, prefix, debug, noColor))
}

// New creates a logger that writes to w. It is configured the same way as
// the one Init installs.
func New(w io.Writer, prefix string, debug, noColor bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    debug,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          prefix,
	})

	l.SetLevel(log.WarnLevel)
	if debug {
		l.SetLevel(log.DebugLevel)
	}

	l.SetColorProfile(termenv.ANSI256)
	if noColor {
		l.SetColorProfile(termenv.Ascii)
	}

	return l
}
