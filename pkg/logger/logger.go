package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a JSON logrus entry tagged with the service name. The entry is
// passed explicitly into services; nothing logs through a package global.
func New(service, level string) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log.WithField("service", service)
}
