package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logg *logrus.Logger
	once sync.Once
)

// GetLogger returns the process logger (JSON to stdout, info level until Configure runs).
func GetLogger() *logrus.Logger {
	once.Do(func() {
		logg = logrus.New()
		logg.SetFormatter(&logrus.JSONFormatter{})
		logg.SetLevel(logrus.InfoLevel)
		logg.SetOutput(os.Stdout)
	})
	return logg
}

// Configure applies the level name; unknown names keep the current level.
func Configure(level string) {
	l := GetLogger()
	if lvl, err := logrus.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	} else {
		l.WithField("level", level).Warn("[logging] unknown LOG_LEVEL, keeping default")
	}
}

// SetOutput redirects the logger, mainly for tests.
func SetOutput(w io.Writer) {
	GetLogger().SetOutput(w)
}

// LogError writes err with the module/function it came from.
func LogError(moduleName, funcName, context string, data any, err error) {
	fields := logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}
	if data != nil {
		fields["data"] = data
	}
	GetLogger().WithFields(fields).Error(err.Error())
}
