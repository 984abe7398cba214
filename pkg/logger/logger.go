package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus with application defaults
type Logger struct {
	*logrus.Logger
}

// NewLogger creates a configured logger. Unknown levels fall back to info.
func NewLogger(level, format string) *Logger {
	log := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	log.SetOutput(os.Stdout)

	return &Logger{log}
}
