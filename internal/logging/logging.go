package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging returns the JSON logger used by the server. An unknown level falls back to info.
func SetupLogging(level string) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:      os.Stdout,
		Hooks:    make(logrus.LevelHooks),
		Level:    logLevel,
		ExitFunc: os.Exit,
	}

	return &logger
}
