// File: logger.go
// Title: Structured Logger
// Description: Immutable structured logger with context fields and a
//              severity driven mapping for structured errors.
// Author: bastawesy
// Version: v0.3.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Synchronous writes only, logger built from config strings
// - 2026-10-18 v0.3.0: Dropped caller capture and Fatal, a library never exits

package log

import (
	"io"
	"os"
	"sync"
	"time"

	ruerror "github.com/bastawesy/reactorutils/core/error"
)

// Logger writes structured entries. Every With* method returns a copy that
// shares the output and its lock with the original.
type Logger struct {
	min       Level
	formatter Formatter
	out       *output
	name      string
	requestID string
	fields    Fields
}

type output struct {
	mu sync.Mutex
	w  io.Writer
}

func (o *output) write(p []byte) {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, _ = o.w.Write(p)
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer // default: os.Stderr
	Name   string
}

// New creates an info level JSON logger writing to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON})
}

// NewWithConfig creates a logger from config
func NewWithConfig(config Config) *Logger {
	w := config.Output
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		min:       config.Level,
		formatter: FormatterFor(config.Format),
		out:       &output{w: w},
		name:      config.Name,
		fields:    Fields{},
	}
}

// FromStrings builds a logger from the textual level and format found in
// configuration files
func FromStrings(level, format string, w io.Writer) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(Config{Level: lvl, Format: f, Output: w}), nil
}

func (l *Logger) derive(apply func(*Logger)) *Logger {
	clone := *l
	clone.fields = make(Fields, len(l.fields))
	for k, v := range l.fields {
		clone.fields[k] = v
	}
	apply(&clone)
	return &clone
}

// WithLevel returns a copy with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	return l.derive(func(c *Logger) { c.min = level })
}

// WithOutput returns a copy writing to w
func (l *Logger) WithOutput(w io.Writer) *Logger {
	return l.derive(func(c *Logger) { c.out = &output{w: w} })
}

// WithName returns a copy with the given logger name
func (l *Logger) WithName(name string) *Logger {
	return l.derive(func(c *Logger) { c.name = name })
}

// WithField returns a copy that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.derive(func(c *Logger) { c.fields[key] = value })
}

// WithFields returns a copy that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	return l.derive(func(c *Logger) {
		for k, v := range fields {
			c.fields[k] = v
		}
	})
}

// WithRequestID returns a copy tagged with a request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.derive(func(c *Logger) { c.requestID = requestID })
}

// GetLevel returns the minimum level
func (l *Logger) GetLevel() Level {
	return l.min
}

// IsLevelEnabled reports whether entries at level are written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.Enabled(l.min)
}

func (l *Logger) Debug(message string, fields ...Fields) { l.write(LevelDebug, message, nil, fields) }
func (l *Logger) Info(message string, fields ...Fields)  { l.write(LevelInfo, message, nil, fields) }
func (l *Logger) Warn(message string, fields ...Fields)  { l.write(LevelWarn, message, nil, fields) }
func (l *Logger) Error(message string, fields ...Fields) { l.write(LevelError, message, nil, fields) }

func (l *Logger) DebugWithErr(message string, err error, fields ...Fields) {
	l.write(LevelDebug, message, err, fields)
}

func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.write(LevelWarn, message, err, fields)
}

func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.write(LevelError, message, err, fields)
}

// LogError logs err at a level derived from its severity: low severity
// (rejected user input) at debug, medium at warn, everything else at error.
// Plain errors are logged at error.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	e, ok := ruerror.As(err)
	if !ok {
		l.write(LevelError, err.Error(), err, nil)
		return
	}

	level := LevelError
	switch e.Severity() {
	case ruerror.SeverityLow:
		level = LevelDebug
	case ruerror.SeverityMedium:
		level = LevelWarn
	}
	l.write(level, e.Message(), err, []Fields{{
		"error_code": e.Code().String(),
		"error_id":   e.ID(),
	}})
}

func (l *Logger) write(level Level, message string, err error, extra []Fields) {
	if !level.Enabled(l.min) {
		return
	}

	entry := &Entry{
		Time:      time.Now(),
		Level:     level,
		Message:   message,
		Logger:    l.name,
		RequestID: l.requestID,
		Fields:    make(Fields, len(l.fields)),
		Err:       err,
	}
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, set := range extra {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}

	line, ferr := l.formatter.Format(entry)
	if ferr != nil {
		return
	}
	l.out.write(line)
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// GetDefault returns the process wide logger used by helpers that take no
// logger of their own
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the default logger. nil is ignored.
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}
