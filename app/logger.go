package app

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/jalexanderII/todo-railway/config"
)

// NewLogger builds the process logger: text in development, JSON in production.
func NewLogger(cfg *config.Config) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		l.WithField("log_level", cfg.LogLevel).Warn("unknown LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.IsProduction() {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}
