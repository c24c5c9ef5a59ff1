// Package logging builds the logrus logger shared by the CLI commands.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/zentry/appicon/config"
)

// New returns a logger writing to out at the configured level and format.
func New(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)

	switch cfg.Format {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("log format %q: want text or json", cfg.Format)
	}
	return l, nil
}
