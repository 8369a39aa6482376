package logger

import (
	"sync"

	"github.com/depp/later-darker/core"
	"github.com/depp/later-darker/handler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with console handler
	h := handler.NewConsoleHandler(handler.ConsoleConfig{})

	defaultLogger = NewBuilder().
		WithHandler(h).
		Build()
}

// Default returns the default logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Debug logs a debug message using the default logger.
func Debug(msg string, attrs ...core.Attr) {
	Default().log(core.DebugLevel, msg, attrs)
}

// Info logs an info message using the default logger.
func Info(msg string, attrs ...core.Attr) {
	Default().log(core.InfoLevel, msg, attrs)
}

// Warn logs a warning message using the default logger.
func Warn(msg string, attrs ...core.Attr) {
	Default().log(core.WarnLevel, msg, attrs)
}

// Error logs an error message using the default logger.
func Error(msg string, attrs ...core.Attr) {
	Default().log(core.ErrorLevel, msg, attrs)
}

// Fail logs a fatal error using the default logger and exits the
// program.
func Fail(msg string, attrs ...core.Attr) {
	// Builds the record here rather than through Logger.Fail so the
	// captured call site is the caller of this function. The chain is
	// one frame shallower than the log path.
	l := Default()
	record := l.newRecord(core.ErrorLevel, msg, attrs, l.callerSkip-1)
	l.fail(&record)
}

// Check verifies that a condition holds using the default logger,
// exiting the program when it does not.
func Check(cond bool, condition string, attrs ...core.Attr) {
	if cond {
		return
	}
	l := Default()
	var location core.Location
	if l.includeCaller {
		location = core.GetCaller(l.callerSkip - 2)
	}
	record := core.CheckFailure(location, condition, attrs...)
	record.AddAttrs(l.attrs...)
	l.fail(&record)
}

// With creates a new logger with additional default attributes.
func With(attrs ...core.Attr) *Logger {
	return Default().With(attrs...)
}
