// File: resolver.go
// Title: Message Resolver
// Description: Lookup of localized validation messages.
// Author: bastawesy
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package timex

// MessageResolver turns a message key, a locale and positional params into
// a localized message. A key found in no bundle is reported as an error
// with code MISSING_RESOURCE.
type MessageResolver interface {
	Resolve(key, locale string, params ...any) (string, error)
}

// MessageResolverFunc adapts a function to MessageResolver
type MessageResolverFunc func(key, locale string, params ...any) (string, error)

// Resolve calls f
func (f MessageResolverFunc) Resolve(key, locale string, params ...any) (string, error) {
	return f(key, locale, params...)
}
