// File: entry.go
// Title: Log Entry
// Description: The record handed to formatters and the Fields type used at
//              call sites.
// Author: bastawesy
// Version: v0.3.0
// Created: 2026-10-18
// Modified: 2026-10-18

package log

import (
	"sort"
	"time"
)

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Keys returns the field names in sorted order
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entry is one log record
type Entry struct {
	Time      time.Time
	Level     Level
	Message   string
	Logger    string
	RequestID string
	Fields    Fields
	Err       error
}
