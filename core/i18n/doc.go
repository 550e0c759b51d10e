// File: doc.go
// Title: Internationalization Package Documentation
// Description: Package documentation for localized message bundles.
// Author: bastawesy
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18

// Package i18n resolves localized messages from bundle files.
//
// A bundle is a set of files sharing a base name:
//
//	messages.toml        root bundle, last in every lookup
//	messages_en.toml     English
//	messages_en_US.yaml  English (United States)
//	messages_ar.toml     Arabic
//
// Keys are dotted paths. They may be written as nested tables or as quoted
// flat keys, both forms resolve the same way:
//
//	[date_validation.date_should_be_in_the_future]
//	error = "{0} must be in the future"
//
//	"date_validation.date_should_be_in_the_future.error" = "{0} must be in the future"
//
// Messages take positional arguments. A single apostrophe starts a quoted
// literal section, so write '' for an apostrophe in the output:
//
//	bundle, err := i18n.NewBundle(i18n.Options{Dir: "./messages"})
//	if err != nil {
//		return err
//	}
//	msg, err := bundle.Resolve(i18n.KeyDateShouldBeInTheFuture, "en-US", "dateFrom")
//
// Lookup for "en-US" tries en-US, en, then the default locale chain and
// finally the root bundle. A key found nowhere yields an error with code
// MISSING_RESOURCE.
package i18n
