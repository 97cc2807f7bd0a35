// Package corrlog provides prefixed charmbracelet/log loggers for
// symcorrect's components.
package corrlog

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetLevel parses level (debug, info, warn, error) and sets it as the
// global charmbracelet/log level that New's loggers inherit. An unknown
// level falls back to info.
func SetLevel(level string) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}

// New creates a logger prefixed with component, respecting the current
// global log level.
func New(component string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          component,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}
