// File: duration.go
// Title: Text Duration
// Description: time.Duration that reads and writes "30s" style text in
//              TOML, YAML and environment variables.
// Author: bastawesy
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package config

import (
	"time"

	"gopkg.in/yaml.v3"

	ruerror "github.com/bastawesy/reactorutils/core/error"
)

// Duration wraps time.Duration for text based configuration formats
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string such as "1m30s"
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return ruerror.Wrap(err, "invalid duration").
			WithCode(ruerror.CodeInvalidFormat).
			WithOperation("config.Duration.UnmarshalText").
			WithDetail("value", string(text))
	}
	d.Duration = parsed
	return nil
}

// MarshalText formats the duration as a Go duration string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML reads a scalar duration string
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}
