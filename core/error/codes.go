// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the utility layer and maps
//              them onto HTTP status classes so request handlers can turn a
//              failure into a response without inspecting messages.
// Author: bastawesy
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Reduced code set to the utility layer, added
//                       invalid-argument, missing-resource and not-acceptable

package error

import "net/http"

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Programmer contract violations. Never localized.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// Resource bundles
	CodeMissingResource Code = "MISSING_RESOURCE"

	// Business logic
	CodeBusinessRule  Code = "BUSINESS_RULE"
	CodeQuotaExceeded Code = "QUOTA_EXCEEDED"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeNotAcceptable    Code = "NOT_ACCEPTABLE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidArgument, CodeMissingResource,
		CodeBusinessRule, CodeQuotaExceeded,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeNotAcceptable:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidArgument:
		return "programming"
	case CodeMissingResource:
		return "resource"
	case CodeBusinessRule, CodeQuotaExceeded:
		return "business"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeNotAcceptable:
		return "validation"
	default:
		return "generic"
	}
}

// HTTPStatus returns the appropriate HTTP status code for this error code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat:
		return http.StatusBadRequest
	case CodeNotAcceptable:
		return http.StatusNotAcceptable
	case CodeBusinessRule:
		return http.StatusConflict
	case CodeQuotaExceeded:
		return http.StatusTooManyRequests
	default:
		// Invalid arguments and missing bundles are server faults.
		return http.StatusInternalServerError
	}
}
