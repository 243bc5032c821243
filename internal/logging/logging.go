// Package logging provides structured logging for exp.
package logging

import (
	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
)

// Logger handles structured logging
type Logger struct {
	log   *logrus.Logger
	quiet bool
}

// New creates a new logger writing colored output to stderr
func New(quiet, debug bool) *Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true, DisableTimestamp: true})
	log.SetOutput(colorable.NewColorableStderr())
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return &Logger{log: log, quiet: quiet}
}

// Debug logs a debug message (only when debug mode is enabled)
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

// Info logs an info message (hidden in quiet mode)
func (l *Logger) Info(format string, args ...interface{}) {
	if !l.quiet {
		l.log.Infof(format, args...)
	}
}

// Warn logs a warning message (hidden in quiet mode)
func (l *Logger) Warn(format string, args ...interface{}) {
	if !l.quiet {
		l.log.Warnf(format, args...)
	}
}

// Error logs an error message (always shown)
func (l *Logger) Error(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

// Success logs a success message (hidden in quiet mode)
func (l *Logger) Success(format string, args ...interface{}) {
	if !l.quiet {
		l.log.Infof("✓ "+format, args...)
	}
}
