package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New builds a JSON-formatted logrus logger at the given level.
// Unknown level strings fall back to info.
func New(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger
}

// NewWithOutput builds a logger like New but writing to w.
// Used by tests and by probes that also mirror output to a file.
func NewWithOutput(level string, w io.Writer) *logrus.Logger {
	logger := New(level)
	logger.SetOutput(w)
	return logger
}
