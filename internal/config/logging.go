package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type Logging struct {
	Development bool
	File        string
}

// Setup applies the level and formatter to every logger and, when a file is
// configured, attaches a rotating file hook to each of them.
func (c Logging) Setup(loggers ...*logrus.Logger) error {
	logLevel := logrus.InfoLevel
	if c.Development {
		logLevel = logrus.DebugLevel
	}

	var hook logrus.Hook
	if c.File != "" {
		var err error
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   c.File,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file %s: %w", c.File, err)
		}
	}

	for _, log := range loggers {
		log.SetLevel(logLevel)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: c.Development})
		if hook != nil {
			log.AddHook(hook)
		}
	}
	return nil
}

func (c Logging) Fields() logrus.Fields {
	return logrus.Fields{
		"development": c.Development,
		"log_file":    c.File,
	}
}
