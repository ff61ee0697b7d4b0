package util

import (
	"github.com/sirupsen/logrus"
)

// Log is the shared structured logger. Gin mode doubles as the environment
// switch: release mode gets JSON output for log aggregation.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	if LoadEnvFor("GIN_MODE") == "release" {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05Z07:00"})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	switch LoadEnvFor("LOG_LEVEL") {
	case "debug":
		l.SetLevel(logrus.DebugLevel)
	case "warn":
		l.SetLevel(logrus.WarnLevel)
	case "error":
		l.SetLevel(logrus.ErrorLevel)
	default:
		l.SetLevel(logrus.InfoLevel)
	}

	return l
}

// LogError logs an error with context
func LogError(message string, err error) {
	if err != nil {
		Log.WithError(err).Error(message)
	}
}
