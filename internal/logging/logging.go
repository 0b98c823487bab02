// Package logging builds the stderr logger shared by the command-line tools.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w, prefixed with the program name and
// without timestamps. An unknown level falls back to info with a warning.
func New(w io.Writer, prog, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          prog,
		ReportTimestamp: false,
		Level:           log.InfoLevel,
	})
	if level == "" {
		return logger
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, defaulting to info", "provided", level)
		return logger
	}
	logger.SetLevel(lvl)
	return logger
}
