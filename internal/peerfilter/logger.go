package peerfilter

import (
	"github.com/sirupsen/logrus"
)

// Logger wraps logrus with the printf-style interface used throughout the
// package.
type Logger struct {
	log *logrus.Logger
}

// NewLogger creates a logger with the specified level (error, warn, info,
// debug); unknown levels fall back to info.
func NewLogger(levelStr string) *Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &Logger{log: log}
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.log.Errorf(format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.log.Warnf(format, v...)
}

// Info logs an informational message
func (l *Logger) Info(format string, v ...interface{}) {
	l.log.Infof(format, v...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.log.Debugf(format, v...)
}
