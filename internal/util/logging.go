// Package util provides common utilities including logging helpers and
// small numeric helpers.
package util

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Log is the process logger. It must not write while the full-screen program
// owns the terminal.
var Log = logrus.New()

// InitLogger points the logger at out with a plain text format.
func InitLogger(out io.Writer, level logrus.Level) {
	Log.SetOutput(out)
	Log.SetLevel(level)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		Log.WithError(err).Error(context)
	}
}

// LogWarn logs a recoverable failure with context if it is non-nil.
func LogWarn(context string, err error) {
	if err != nil {
		Log.WithError(err).Warn(context)
	}
}
