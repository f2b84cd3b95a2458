// Package log is the diagnostic logger used by rsconv.
//
// Diagnostics always go to the error stream so that text renderings written
// to stdout stay clean. The level is taken from RSCONV_LOG_LEVEL, and
// RSCONV_DEBUG switches debug output on.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	EnvLogLevel = "RSCONV_LOG_LEVEL"
	EnvDebug    = "RSCONV_DEBUG"
)

// Fields carries structured key/value context for a log line.
type Fields = map[string]interface{}

type Logger interface {
	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warning(msg string, fields Fields)
	Error(msg string, fields Fields)
	SetLevel(level string)
	SetLogWriter(writer io.Writer)
	IsDebug() bool
}

func init() {
	vLog = New(os.Stderr, levelFromEnv())
}

var vLog Logger

type defaultLogger struct {
	logger *logrus.Logger
}

// New creates a logrus backed Logger writing to w at the given level.
func New(w io.Writer, level string) Logger {
	logger := logrus.New()
	logger.Formatter = &logrus.TextFormatter{TimestampFormat: time.RFC3339Nano, FullTimestamp: true}
	logger.Out = w
	l := &defaultLogger{logger: logger}
	l.SetLevel(level)

	return l
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return New(io.Discard, "error")
}

func levelFromEnv() string {
	if isTruthy(os.Getenv(EnvDebug)) {
		return "debug"
	}

	return os.Getenv(EnvLogLevel)
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}

func (l *defaultLogger) Debug(msg string, fields Fields) {
	if msg == "" && len(fields) == 0 {
		return
	}
	l.logger.WithFields(fields).Debug(msg)
}

func (l *defaultLogger) Info(msg string, fields Fields) {
	if msg == "" && len(fields) == 0 {
		return
	}
	l.logger.WithFields(fields).Info(msg)
}

func (l *defaultLogger) Warning(msg string, fields Fields) {
	if msg == "" && len(fields) == 0 {
		return
	}
	l.logger.WithFields(fields).Warning(msg)
}

func (l *defaultLogger) Error(msg string, fields Fields) {
	if msg == "" && len(fields) == 0 {
		return
	}
	l.logger.WithFields(fields).Error(msg)
}

func (l *defaultLogger) IsDebug() bool {
	return l.logger.IsLevelEnabled(logrus.DebugLevel)
}

func (l *defaultLogger) SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		l.logger.SetLevel(logrus.DebugLevel)
	case "info":
		l.logger.SetLevel(logrus.InfoLevel)
	case "error":
		l.logger.SetLevel(logrus.ErrorLevel)
	default:
		l.logger.SetLevel(logrus.WarnLevel)
	}
}

func (l *defaultLogger) SetLogWriter(writer io.Writer) {
	l.logger.Out = writer
}

// Default returns the process logger.
func Default() Logger {
	return vLog
}

// SetLogger replaces the process logger.
func SetLogger(logger Logger) {
	if logger == nil {
		return
	}
	vLog = logger
}

func SetLogLevel(level string) {
	if level == "" {
		return
	}
	vLog.SetLevel(level)
}

func SetLogWriter(writer io.Writer) {
	if writer == nil {
		return
	}
	vLog.SetLogWriter(writer)
}

func Debug(msg string, fields Fields) {
	vLog.Debug(msg, fields)
}

func Info(msg string, fields Fields) {
	vLog.Info(msg, fields)
}

func Warning(msg string, fields Fields) {
	vLog.Warning(msg, fields)
}

func Error(msg string, fields Fields) {
	vLog.Error(msg, fields)
}
