// File: locale.go
// Title: Locale Normalization
// Description: Locale parsing and normalization, the fallback chain used by
//              bundle lookups and the mapping between locales and bundle
//              file names.
// Author: bastawesy
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Dropped Accept-Language detection, added the
//                       ResourceBundle style candidate chain

package i18n

import (
	"strings"

	ruerror "github.com/bastawesy/reactorutils/core/error"
)

// NormalizeLocale normalizes a locale string to "ll" or "ll-CC".
// Both "_" and "-" are accepted as separators. Invalid input yields "".
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ""
	}

	locale = strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
	parts := strings.Split(locale, "-")

	language := parts[0]
	if len(language) != 2 && len(language) != 3 {
		return ""
	}
	for _, r := range language {
		if r < 'a' || r > 'z' {
			return ""
		}
	}

	if len(parts) > 1 && len(parts[1]) == 2 {
		return language + "-" + strings.ToUpper(parts[1])
	}
	return language
}

// ParseLocale normalizes locale and fails when it is not a recognizable
// language tag.
func ParseLocale(locale string) (string, error) {
	if strings.TrimSpace(locale) == "" {
		return "", ruerror.New("locale cannot be empty").
			WithCode(ruerror.CodeInvalidFormat).
			WithOperation("i18n.ParseLocale")
	}

	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return "", ruerror.New("invalid locale format").
			WithCode(ruerror.CodeInvalidFormat).
			WithOperation("i18n.ParseLocale").
			WithDetail("locale", locale).
			WithDetail("expected_format", "e.g., 'en', 'en-US', 'en_US'")
	}
	return normalized, nil
}

// SplitLocale splits a locale into language and country parts
func SplitLocale(locale string) (language, country string) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return "", ""
	}

	language, country, _ = strings.Cut(normalized, "-")
	return language, country
}

// localeCandidates returns the lookup order for a single locale,
// most specific first: "en-US" gives ["en-US", "en"].
func localeCandidates(locale string) []string {
	language, country := SplitLocale(locale)
	if language == "" {
		return nil
	}
	if country == "" {
		return []string{language}
	}
	return []string{language + "-" + country, language}
}

// lookupChain returns the full search order for locale: its own
// candidates, then those of the default locale, then the root bundle ("").
func lookupChain(locale, defaultLocale string) []string {
	chain := make([]string, 0, 5)
	seen := make(map[string]bool, 5)
	add := func(candidates ...string) {
		for _, c := range candidates {
			if !seen[c] {
				seen[c] = true
				chain = append(chain, c)
			}
		}
	}

	add(localeCandidates(locale)...)
	add(localeCandidates(defaultLocale)...)
	add("")
	return chain
}

// FormatLocaleForFilename formats a locale for use in bundle file names
// ("en-US" becomes "en_US").
func FormatLocaleForFilename(locale string) string {
	return strings.ReplaceAll(NormalizeLocale(locale), "-", "_")
}
