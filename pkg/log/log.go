// Package log provides the logger used throughout the emulator. It is a
// thin layer over logrus, configured the same way everywhere.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface accepted by the emulator.
type Logger = logrus.FieldLogger

// Fields is a set of structured fields attached to a log entry.
type Fields = logrus.Fields

// New returns a logger writing plain text to stderr at info level.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewVerbose returns a logger like New, that also emits debug entries.
func NewVerbose() *logrus.Logger {
	l := New()
	l.SetLevel(logrus.DebugLevel)
	return l
}
