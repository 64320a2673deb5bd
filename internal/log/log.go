// Package log wraps logrus behind a small package-level API. A terminal
// application cannot write diagnostics to stdout without corrupting the
// screen, so output goes to a file (or is discarded entirely) instead.
package log

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// SetDebug enables debug-level logging to the given file path. An empty
// path uses scribe.log in the user cache directory.
func SetDebug(path string) error {
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return err
		}
		path = filepath.Join(dir, "scribe", "scribe.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	return nil
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
	logger.SetLevel(logrus.DebugLevel)
}

func Debug(format string, args ...interface{}) { logger.Debugf(format, args...) }
func Info(format string, args ...interface{})  { logger.Infof(format, args...) }
func Warn(format string, args ...interface{})  { logger.Warnf(format, args...) }
func Error(format string, args ...interface{}) { logger.Errorf(format, args...) }

// WithField returns an entry carrying a structured field.
func WithField(key string, value interface{}) *logrus.Entry {
	return logger.WithField(key, value)
}
