package logger

import (
	"os"
	"sync/atomic"

	"github.com/BROOSWAJNE/terrier/config"
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	// Initialize default logger from TERRIER_* variables, ignoring
	// malformed values rather than failing at import time
	l, err := FromSettings(config.FromEnv(os.LookupEnv))
	if err != nil {
		l = New(Config{})
	}
	defaultLogger.Store(l)
}

// Default returns the default logger
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultLogger.Store(l)
}

// Package-level convenience functions using the default logger

// Log logs args at level using the default logger
func Log(level Level, args ...any) error {
	return Default().Log(level, args...)
}

// Print logs at info level using the default logger
func Print(args ...any) {
	Default().Print(args...)
}

// Trace logs a trace message using the default logger
func Trace(args ...any) {
	Default().Trace(args...)
}

// Debug logs a debug message using the default logger
func Debug(args ...any) {
	Default().Debug(args...)
}

// Info logs an info message using the default logger
func Info(args ...any) {
	Default().Info(args...)
}

// Warn logs a warning message using the default logger
func Warn(args ...any) {
	Default().Warn(args...)
}

// Error logs an error message using the default logger
func Error(args ...any) {
	Default().Error(args...)
}

// Fatal logs a fatal message using the default logger
func Fatal(args ...any) {
	Default().Fatal(args...)
}

// Child creates a child of the default logger
func Child(labels ...string) *Logger {
	return Default().Child(labels...)
}
