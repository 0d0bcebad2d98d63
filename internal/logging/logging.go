package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates the application logger. Development gets human-readable
// output at debug level; everything else logs JSON at info level.
func New(environment string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if environment == "dev" || environment == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}
