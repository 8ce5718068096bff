// Package logging builds the logrus loggers used across the module.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to out at the given level name.
// An empty level means info.
func New(out io.Writer, level string) (*logrus.Logger, error) {
	lvl := logrus.InfoLevel
	if trimmed := strings.TrimSpace(level); trimmed != "" {
		parsed, err := logrus.ParseLevel(trimmed)
		if err != nil {
			return nil, errors.Wrapf(err, "logging: level %q", trimmed)
		}
		lvl = parsed
	}

	if out == nil {
		out = os.Stderr
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	return l, nil
}

// Console returns a stderr logger at level, falling back to info when the
// level does not parse.
func Console(level string) *logrus.Logger {
	l, err := New(os.Stderr, level)
	if err != nil {
		l, _ = New(os.Stderr, "")
		l.WithError(err).Warn("invalid log level, using info")
	}
	return l
}

// Nop returns a logger that drops everything.
func Nop() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(l)
}
