// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that loggers can pick a
//              level and operators can tell user mistakes from system faults.
// Author: bastawesy
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Severity mapping for the reduced code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates expected failures caused by user input
	SeverityLow Severity = iota

	// SeverityMedium indicates a rejected business operation such as an
	// exhausted quota
	SeverityMedium

	// SeverityHigh indicates a serious error such as a broken caller contract
	// or a missing message bundle
	SeverityHigh

	// SeverityCritical is reserved for failures that stop the service
	SeverityCritical
)

var severityNames = [...]string{
	SeverityLow:      "low",
	SeverityMedium:   "medium",
	SeverityHigh:     "high",
	SeverityCritical: "critical",
}

// String returns the lower case severity name
func (s Severity) String() string {
	if s < SeverityLow || s > SeverityCritical {
		return "unknown"
	}
	return severityNames[s]
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvalidArgument, CodeMissingResource, CodeInternal, CodeConfigError,
		CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	case CodeBusinessRule, CodeQuotaExceeded:
		return SeverityMedium

	case CodeNotFound, CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeNotAcceptable:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
