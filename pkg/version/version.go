// File: version.go
// Title: Package Versions
// Description: Version of the utility layer and of each of its packages.
// Author: bastawesy
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package version

// Version constants for the utility layer
const (
	// Module version
	Module = "0.2.0"

	// Package versions
	Error      = "0.2.0"
	Log        = "0.2.0"
	I18n       = "0.2.0"
	Config     = "0.2.0"
	Timex      = "0.2.0"
	Validation = "0.1.0"
	Safe       = "0.1.0"
	JSON       = "0.1.0"
	HTTP       = "0.1.0"
)

// Packages lists the package names known to PackageVersion, in display order
var Packages = []string{"error", "log", "i18n", "config", "timex", "validationx", "safex", "jsonx", "httpx"}

// PackageVersion returns the version for a given package name
func PackageVersion(name string) string {
	switch name {
	case "error":
		return Error
	case "log":
		return Log
	case "i18n":
		return I18n
	case "config":
		return Config
	case "timex":
		return Timex
	case "validationx":
		return Validation
	case "safex":
		return Safe
	case "jsonx":
		return JSON
	case "httpx":
		return HTTP
	default:
		return Module
	}
}
