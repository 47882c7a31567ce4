package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  = newLogger(os.Stdout, logrus.InfoLevel)
	ErrorLogger = newLogger(os.Stderr, logrus.ErrorLevel)
)

// InitLogger resets both loggers to their default outputs and levels.
func InitLogger() {
	InfoLogger = newLogger(os.Stdout, logrus.InfoLevel)
	ErrorLogger = newLogger(os.Stderr, logrus.ErrorLevel)
}

// ConfigureLogger applies the configured level to InfoLogger. An unknown
// level keeps info. ErrorLogger always stays at error level.
func ConfigureLogger(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		InfoLogger.Warnf("unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	InfoLogger.SetLevel(lvl)
}

// SilenceLogger discards all log output, for tests.
func SilenceLogger() {
	InfoLogger.SetOutput(io.Discard)
	ErrorLogger.SetOutput(io.Discard)
}

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(level)
	return logger
}
