package logger

import (
	"os"

	logger "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const timestampFormat = "2006-01-02 15:04:05"

// L is the shared logger used when a component is not given its own.
var L = New(logger.InfoLevel)

// New returns a stderr logger with the prefixed text formatter at the given level.
func New(level logger.Level) *logger.Logger {
	return &logger.Logger{
		Out:   os.Stderr,
		Level: level,
		Hooks: make(logger.LevelHooks),
		Formatter: &prefixed.TextFormatter{
			TimestampFormat: timestampFormat,
			FullTimestamp:   true,
			ForceFormatting: true,
		},
	}
}

// Parse builds a logger from a textual level such as "debug" or "warn".
func Parse(level string) (*logger.Logger, error) {
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return New(lvl), nil
}
