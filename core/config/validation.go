// File: validation.go
// Title: Configuration Validation
// Description: Checks that every configured value can be turned into the
//              component it configures.
// Author: bastawesy
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Rule maps replaced by checks on the typed sections

package config

import (
	"strings"

	ruerror "github.com/bastawesy/reactorutils/core/error"
	"github.com/bastawesy/reactorutils/core/i18n"
	rulog "github.com/bastawesy/reactorutils/core/log"
)

// Validate reports the first invalid value as a CodeInvalidConfig error.
// Every problem found is listed in the "problems" detail.
func (c *Config) Validate() error {
	var problems []string
	add := func(key, reason string) {
		problems = append(problems, key+": "+reason)
	}

	if _, err := i18n.ParseLocale(c.General.Locale); err != nil {
		add("general.locale", "invalid locale "+quote(c.General.Locale))
	}
	if _, err := i18n.ParseLocale(c.I18n.DefaultLocale); err != nil {
		add("i18n.default_locale", "invalid locale "+quote(c.I18n.DefaultLocale))
	}
	if _, err := i18n.ParseFormat(c.I18n.Format); err != nil {
		add("i18n.format", "unknown format "+quote(c.I18n.Format))
	}
	if strings.TrimSpace(c.I18n.BaseName) == "" {
		add("i18n.base_name", "must not be empty")
	}
	if c.I18n.Watch && strings.TrimSpace(c.I18n.Dir) == "" {
		add("i18n.watch", "requires i18n.dir")
	}

	if _, err := rulog.ParseLevel(c.Log.Level); err != nil {
		add("log.level", "unknown level "+quote(c.Log.Level))
	}
	if _, err := rulog.ParseFormat(c.Log.Format); err != nil {
		add("log.format", "unknown format "+quote(c.Log.Format))
	}
	if strings.TrimSpace(c.Log.Output) == "" {
		add("log.output", "must not be empty")
	}

	if c.HTTP.Timeout.Duration < 0 {
		add("http.timeout", "must not be negative")
	}
	if strings.TrimSpace(c.HTTP.ContentType) == "" {
		add("http.content_type", "must not be empty")
	}

	if len(problems) == 0 {
		return nil
	}
	return ruerror.New("invalid configuration: " + problems[0]).
		WithCode(ruerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("problems", problems)
}

func quote(s string) string {
	return "'" + s + "'"
}
