// Package logger provides modifications to charmbracelet/log's default logger
// for construction-time diagnostics in the abbreviation engine.
//
// Query operations never log; only Build and its helpers do, since the
// engine is otherwise a pure, stateless function of its inputs.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a new default charm log with the given prefix.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a new charm log with custom options.
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
