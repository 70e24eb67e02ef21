package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logDir           = "logs"
	fileBufferSize   = 32 * 1024
	fileQueueEntries = 1000
)

// NewLogger builds the JSON logger for a process. Servers log to logs/<serverType>.log
// and mirror to stdout; the "cli" type writes to stderr only so stdout stays clean.
func NewLogger(serverType string) *logrus.Logger {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(ParseLevel(os.Getenv("LOG_LEVEL")))

	if serverType == "cli" {
		logger.SetOutput(os.Stderr)
		return logger
	}

	writer, err := newFileWriter(serverType)
	if err != nil {
		logger.SetOutput(os.Stdout)
		logger.WithError(err).Warn("file logging disabled")
		return logger
	}
	logger.SetOutput(writer)
	logger.AddHook(NewConsoleHook(os.Stdout))
	return logger
}

// ParseLevel falls back to info for empty or unknown values.
func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func newFileWriter(serverType string) (*AsyncFileWriter, error) {
	name := serverType
	if name == "" {
		name = "api"
	}
	logFile := filepath.Clean(filepath.Join(logDir, name+".log"))
	if !strings.HasPrefix(logFile, logDir+string(filepath.Separator)) {
		return nil, fmt.Errorf("invalid log file path %q: must be in %s directory", logFile, logDir)
	}
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	return NewAsyncFileWriter(logFile, fileBufferSize)
}
