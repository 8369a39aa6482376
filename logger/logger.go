package logger

import (
	"os"

	"github.com/depp/later-darker/core"
	"github.com/depp/later-darker/handler"
)

// osExit is a variable to allow overriding os.Exit in tests.
var osExit = os.Exit

// Logger is the main logging interface (immutable).
type Logger struct {
	handler       handler.Handler
	level         core.Level
	attrs         []core.Attr
	includeCaller bool
	callerSkip    int
}

// Builder provides a fluent API for building Logger instances.
type Builder struct {
	handler       handler.Handler
	level         core.Level
	attrs         []core.Attr
	includeCaller bool
	callerSkip    int
}

// NewBuilder creates a new logger builder. The default level is Debug
// (severity is presentation, not filtering) and caller capture is on.
func NewBuilder() *Builder {
	return &Builder{
		level:         core.DebugLevel,
		includeCaller: true,
		callerSkip:    3, // Default skip for GetCaller
	}
}

// WithHandler sets the handler.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the minimum level to log.
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithAttrs adds default attributes to all log records.
func (b *Builder) WithAttrs(attrs ...core.Attr) *Builder {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// WithCaller enables or disables call-site capture.
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Logger instance.
func (b *Builder) Build() *Logger {
	return &Logger{
		handler:       b.handler,
		level:         b.level,
		attrs:         b.attrs,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
	}
}

// With creates a new Logger with additional default attributes
// (immutable operation).
func (l *Logger) With(attrs ...core.Attr) *Logger {
	newAttrs := make([]core.Attr, len(l.attrs)+len(attrs))
	copy(newAttrs, l.attrs)
	copy(newAttrs[len(l.attrs):], attrs)

	return &Logger{
		handler:       l.handler,
		level:         l.level,
		attrs:         newAttrs,
		includeCaller: l.includeCaller,
		callerSkip:    l.callerSkip,
	}
}

// Log logs a message at the specified level.
func (l *Logger) Log(level core.Level, msg string, attrs ...core.Attr) {
	l.log(level, msg, attrs)
}

// log is the shared emit path. Every public entry point (Log and the
// level methods) sits one frame above it, so one skip value captures
// the right call site for all of them.
func (l *Logger) log(level core.Level, msg string, attrs []core.Attr) {
	if level < l.level || l.handler == nil {
		return
	}
	record := l.newRecord(level, msg, attrs, l.callerSkip)
	_ = l.handler.Handle(&record)
}

// newRecord assembles a call-local record: default attributes first,
// then the call's attributes, preserving insertion order.
func (l *Logger) newRecord(level core.Level, msg string, attrs []core.Attr, skip int) core.Record {
	var location core.Location
	if l.includeCaller {
		location = core.GetCaller(skip)
	}
	record := core.NewRecord(level, location, msg)
	record.AddAttrs(l.attrs...)
	record.AddAttrs(attrs...)
	return record
}

// Debug logs a message at debug level.
func (l *Logger) Debug(msg string, attrs ...core.Attr) {
	l.log(core.DebugLevel, msg, attrs)
}

// Info logs a message at info level.
func (l *Logger) Info(msg string, attrs ...core.Attr) {
	l.log(core.InfoLevel, msg, attrs)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(msg string, attrs ...core.Attr) {
	l.log(core.WarnLevel, msg, attrs)
}

// Error logs a message at error level.
func (l *Logger) Error(msg string, attrs ...core.Attr) {
	l.log(core.ErrorLevel, msg, attrs)
}

// Fail logs a fatal error in its most visible form and exits the
// program.
func (l *Logger) Fail(msg string, attrs ...core.Attr) {
	// One frame shallower than Log: Fail builds the record itself.
	record := l.newRecord(core.ErrorLevel, msg, attrs, l.callerSkip-1)
	l.fail(&record)
}

// Check verifies that a condition holds. If it does not, the failed
// condition is reported as a fatal error and the program exits.
func (l *Logger) Check(cond bool, condition string, attrs ...core.Attr) {
	if cond {
		return
	}
	var location core.Location
	if l.includeCaller {
		// Two frames shallower than Log: Check captures directly.
		location = core.GetCaller(l.callerSkip - 2)
	}
	record := core.CheckFailure(location, condition, attrs...)
	record.AddAttrs(l.attrs...)
	l.fail(&record)
}

func (l *Logger) fail(record *core.Record) {
	if fh, ok := l.handler.(handler.FailHandler); ok {
		fh.Fail(record)
	} else if l.handler != nil {
		_ = l.handler.Handle(record)
	}
	osExit(1)
}
