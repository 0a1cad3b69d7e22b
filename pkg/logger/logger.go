// Package logger wires a shared logrus instance for the service and CLI
// layers. The core engines stay pure and never log.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the shared instance. Init replaces its configuration; the zero
// setup logs info and above to stderr.
var Logger = logrus.New()

// Config holds logging settings.
type Config struct {
	Level      string // debug, info, warn, error
	OutputFile string // optional; empty logs to stderr only
}

// Init configures the shared logger.
func Init(cfg Config) error {
	level, err := logrus.ParseLevel(defaultLevel(cfg.Level))
	if err != nil {
		return err
	}
	Logger.SetLevel(level)
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	if cfg.OutputFile != "" {
		f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		Logger.SetOutput(io.MultiWriter(os.Stderr, f))
	} else {
		Logger.SetOutput(os.Stderr)
	}
	return nil
}

func defaultLevel(level string) string {
	if level == "" {
		return "info"
	}
	return level
}

// WithComponent tags entries with the originating component.
func WithComponent(name string) *logrus.Entry {
	return Logger.WithField("component", name)
}
