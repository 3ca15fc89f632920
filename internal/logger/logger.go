package logger

import (
	"fmt"
	"strings"

	"github.com/orgchart/orgchart-backend/internal/config"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

// New creates a new logger with the given format and level
func New(cfg config.Logger) (*logrus.Logger, error) {
	log := logrus.New()

	switch strings.ToLower(cfg.Format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		return nil, fmt.Errorf("invalid log format: %q", cfg.Format)
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	log.SetLevel(level)

	return log, nil
}

type gooseLogger struct {
	log logrus.FieldLogger
}

// Goose returns a migration logger that writes through log with component=goose
func Goose(log logrus.FieldLogger) goose.Logger {
	return gooseLogger{log: log.WithField("component", "goose")}
}

// goose terminates its messages with a newline, logrus adds its own
func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Infof(strings.TrimSuffix(format, "\n"), v...)
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatalf(strings.TrimSuffix(format, "\n"), v...)
}
