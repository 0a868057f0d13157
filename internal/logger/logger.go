// Package logger wraps charm/log with the diagnostics emitted by the CLI.
// Library packages never log; they return errors for the CLI to report.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates an Info level logger writing to w.
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "hw2html",
	})
	l.SetStyles(levelStyles())
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// LevelFor maps the CLI verbosity flags to a level. Quiet wins over verbose.
func LevelFor(quiet, verbose bool) log.Level {
	switch {
	case quiet:
		return log.ErrorLevel
	case verbose:
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}

// ConfigLoaded logs which configuration file is in effect.
func (l *Logger) ConfigLoaded(path string) {
	l.Debug("config loaded", "path", path)
}

// PoolSized logs the number of converters used for a batch.
func (l *Logger) PoolSized(workers, files int) {
	l.Debug("converter pool ready",
		"workers", workers,
		"files", files)
}

// FileConverted logs a successful conversion with its duration.
func (l *Logger) FileConverted(source, dest string, duration time.Duration) {
	l.Debug("file converted",
		"source", source,
		"dest", dest,
		"duration", duration.Round(time.Millisecond))
}

// FileError logs an error for a specific file
func (l *Logger) FileError(file string, err error) {
	l.Error("conversion failed",
		"file", file,
		"error", err)
}

// Skipped logs when a file is skipped
func (l *Logger) Skipped(file, reason string) {
	l.Debug("file skipped",
		"file", file,
		"reason", reason)
}

// BatchCompleted logs the outcome of a multi-file run.
func (l *Logger) BatchCompleted(succeeded, failed int, duration time.Duration) {
	if failed > 0 {
		l.Warn("batch completed with errors",
			"succeeded", succeeded,
			"failed", failed,
			"duration", duration.Round(time.Millisecond))
		return
	}
	l.Info("batch completed",
		"succeeded", succeeded,
		"duration", duration.Round(time.Millisecond))
}
