// File: doc.go
// Title: Configuration Package Documentation
// Description: Package documentation for configuration loading.
// Author: bastawesy
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18

// Package config loads the settings of the utility layer.
//
// Values are resolved in this order, later sources winning:
//
//  1. compiled defaults (Default)
//  2. a TOML or YAML file, chosen by extension
//  3. REACTORUTILS_<SECTION>_<KEY> environment variables
//
// Example file:
//
//	[general]
//	locale = "ar"
//
//	[i18n]
//	dir = "./messages"
//	watch = true
//
//	[log]
//	level = "debug"
//	format = "json"
//
//	[http]
//	timeout = "10s"
//
// The result is validated; an invalid value fails with code INVALID_CONFIG.
package config
