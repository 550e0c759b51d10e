// File: defaults.go
// Title: Configuration Defaults
// Description: Compiled default values used when neither a file nor the
//              environment sets a key.
// Author: bastawesy
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package config

import "time"

const (
	DefaultAppName         = "reactorutils"
	DefaultLocale          = "en"
	DefaultBaseName        = "messages"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultLogOutput       = "stderr"
	DefaultHTTPTimeout     = 30 * time.Second
	DefaultContentType     = "application/json;charset=UTF-8"
	DefaultRequestIDHeader = "X-Request-ID"
)

// Default returns a Config with compiled default values
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			AppName: DefaultAppName,
			Locale:  DefaultLocale,
		},
		I18n: I18nConfig{
			BaseName:      DefaultBaseName,
			DefaultLocale: DefaultLocale,
			Format:        "auto",
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			Output: DefaultLogOutput,
		},
		HTTP: HTTPConfig{
			Timeout:         Duration{DefaultHTTPTimeout},
			ContentType:     DefaultContentType,
			RequestIDHeader: DefaultRequestIDHeader,
		},
	}
}
