// Package logger builds charmbracelet/log loggers that share the global level.
// Loggers write to stderr so stdout stays free for conversion output and the
// IPC stream.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a prefixed charm log at the current global level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: log.GetLevel() == log.DebugLevel,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// Configure sets the global charm log level from a level name such as
// "debug" or "warn". Debug also turns on timestamps.
func Configure(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	log.SetReportTimestamp(lvl == log.DebugLevel)
	return nil
}
