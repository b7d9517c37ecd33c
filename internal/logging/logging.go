package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: logrus.InfoLevel,
		Hooks: make(logrus.LevelHooks),
	}

	return &logger
}

// SetupLoggingWithLevel is SetupLogging with the level parsed from name (e.g. "debug").
// The package-level logrus logger is configured the same way.
func SetupLoggingWithLevel(name string) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return nil, err
	}

	logger := SetupLogging()
	logger.SetLevel(level)

	logrus.SetFormatter(logger.Formatter)
	logrus.SetOutput(logger.Out)
	logrus.SetLevel(level)

	return logger, nil
}
