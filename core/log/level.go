// File: level.go
// Title: Log Levels
// Description: Severity levels used to filter log output and their parsing
//              from configuration strings.
// Author: bastawesy
// Version: v0.3.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.3.0: Four levels only, parse failures are structured errors

package log

import (
	"strings"

	ruerror "github.com/bastawesy/reactorutils/core/error"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelDebug is used for expected failures such as rejected user input
	LevelDebug Level = iota

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates business rule violations and degraded behavior
	LevelWarn

	// LevelError represents failures that need attention
	LevelError
)

var levelNames = [...]struct{ long, short string }{
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
}

var levelAliases = map[string]Level{
	"debug": LevelDebug, "dbg": LevelDebug, "trace": LevelDebug,
	"info": LevelInfo, "inf": LevelInfo, "information": LevelInfo,
	"warn": LevelWarn, "wrn": LevelWarn, "warning": LevelWarn,
	"error": LevelError, "err": LevelError,
}

func (l Level) valid() bool {
	return l >= LevelDebug && l <= LevelError
}

// String returns the lower case level name used in JSON and logfmt output
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three letter tag used in text output
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// Enabled reports whether a message at l passes the minimum level min
func (l Level) Enabled(min Level) bool {
	return l >= min
}

// ParseLevel parses a level name. "trace" is accepted as debug.
func ParseLevel(name string) (Level, error) {
	if lvl, ok := levelAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return lvl, nil
	}
	return LevelInfo, ruerror.New("invalid log level").
		WithCode(ruerror.CodeInvalidConfig).
		WithOperation("log.ParseLevel").
		WithDetail("level", name)
}
