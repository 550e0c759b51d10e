// Package error provides structured error handling for the utility layer.
//
// Package: error
// Title: Structured Errors
// Description: Errors carry a Code, a Severity, free-form details and, for
//              user-facing failures, the message key they were localized from.
// Author: bastawesy
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Two kinds of failure matter to callers:
//
//   - CodeInvalidArgument: a caller passed nil where a value is required.
//     The message is never localized.
//   - CodeValidationFailed: user input broke a business rule. The message is
//     localized and the code maps to HTTP 400.
//
// Usage:
//
//	err := ruerror.New("startDate and endDate can not be null").
//		WithCode(ruerror.CodeInvalidArgument).
//		WithOperation("timex.ValidateFirstBeforeSecond")
//
//	if ruerror.IsValidationFailure(err) {
//		status := ruerror.HTTPStatus(err) // 400
//	}
package error
