// Package logging sets up the diagnostics log. The terminal belongs to the
// UI, so everything goes to a file.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Setup opens path in append mode and returns a logger writing to it.
// The returned closer closes the file.
func Setup(path, level string) (*logrus.Logger, io.Closer, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	log := New(f, lvl)
	log.Info("session start")
	return log, f, nil
}

// New returns a logger with the text formatter writing to w.
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    true,
		QuoteEmptyFields: true,
	})
	return log
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	return New(io.Discard, logrus.PanicLevel)
}
