// File: format.go
// Title: Log Formatters
// Description: JSON, text and logfmt renderings of a log entry. Fields are
//              always written in sorted key order.
// Author: bastawesy
// Version: v0.3.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.3.0: JSON through json-iterator with sorted keys, text and
//                       logfmt share one field writer

package log

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	ruerror "github.com/bastawesy/reactorutils/core/error"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON writes one JSON object per line
	FormatJSON Format = iota

	// FormatText writes a short human readable line
	FormatText

	// FormatLogfmt writes key=value pairs
	FormatLogfmt
)

var formatNames = map[Format]string{
	FormatJSON:   "json",
	FormatText:   "text",
	FormatLogfmt: "logfmt",
}

// String returns the string representation of the format
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat parses a format name
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return FormatJSON, ruerror.New("invalid log format").
		WithCode(ruerror.CodeInvalidConfig).
		WithOperation("log.ParseFormat").
		WithDetail("format", name)
}

// Formatter renders an entry as a single line including the newline
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// FormatterFor returns the formatter for format, JSON when unknown
func FormatterFor(format Format) Formatter {
	switch format {
	case FormatText:
		return textFormatter{layout: "15:04:05.000"}
	case FormatLogfmt:
		return logfmtFormatter{layout: time.RFC3339Nano}
	default:
		return jsonFormatter{layout: time.RFC3339Nano}
	}
}

var logJSON = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

type jsonFormatter struct {
	layout string
}

func (f jsonFormatter) Format(entry *Entry) ([]byte, error) {
	record := make(map[string]interface{}, len(entry.Fields)+7)
	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		record[k] = v
	}

	record["timestamp"] = entry.Time.Format(f.layout)
	record["level"] = entry.Level.String()
	record["message"] = entry.Message
	if entry.Logger != "" {
		record["logger"] = entry.Logger
	}
	if entry.RequestID != "" {
		record["request_id"] = entry.RequestID
	}

	if entry.Err != nil {
		record["error"] = entry.Err.Error()
		if e, ok := ruerror.As(entry.Err); ok {
			details := map[string]interface{}{
				"code":     e.Code().String(),
				"severity": e.Severity().String(),
				"id":       e.ID(),
			}
			if e.Operation() != "" {
				details["operation"] = e.Operation()
			}
			if e.MessageKey() != "" {
				details["message_key"] = e.MessageKey()
			}
			record["error_details"] = details
		}
	}

	out, err := logJSON.Marshal(record)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

type textFormatter struct {
	layout string
}

// 12:00:00.000 [DBG] {timex} (req=abc) message key=value error="..."
func (f textFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder
	b.WriteString(entry.Time.Format(f.layout))
	b.WriteString(" [" + entry.Level.ShortString() + "]")
	if entry.Logger != "" {
		b.WriteString(" {" + entry.Logger + "}")
	}
	if entry.RequestID != "" {
		b.WriteString(" (req=" + entry.RequestID + ")")
	}
	b.WriteString(" " + entry.Message)
	writePairs(&b, entry, false)
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

type logfmtFormatter struct {
	layout string
}

func (f logfmtFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder
	b.WriteString("timestamp=" + entry.Time.Format(f.layout))
	b.WriteString(" level=" + entry.Level.String())
	b.WriteString(" message=" + strconv.Quote(entry.Message))
	if entry.Logger != "" {
		b.WriteString(" logger=" + entry.Logger)
	}
	if entry.RequestID != "" {
		b.WriteString(" request_id=" + entry.RequestID)
	}
	writePairs(&b, entry, true)
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// writePairs appends the fields and the error as " key=value". With quote
// set, string and error values are quoted. The error is always quoted.
func writePairs(b *strings.Builder, entry *Entry, quote bool) {
	for _, k := range entry.Fields.Keys() {
		b.WriteString(" " + k + "=")
		switch v := entry.Fields[k].(type) {
		case string:
			if quote {
				v = strconv.Quote(v)
			}
			b.WriteString(v)
		case error:
			if quote {
				b.WriteString(strconv.Quote(v.Error()))
			} else {
				b.WriteString(v.Error())
			}
		default:
			fmt.Fprint(b, v)
		}
	}
	if entry.Err != nil {
		b.WriteString(" error=" + strconv.Quote(entry.Err.Error()))
	}
}
