// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type carrying a code, severity, details,
//              an optional localization key and a stack trace. Validation
//              failures and contract violations are both expressed with it and
//              are told apart by their code.
// Author: bastawesy
// Version: v0.3.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Positional message arguments, error IDs, errors.As based
//                       helpers, dropped user and request context
// - 2026-10-18 v0.3.0: One line String, JSON through json-iterator

package error

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// MaxStackFrames limits the number of stack frames captured
const MaxStackFrames = 20

// Error represents a structured error with context, codes, and metadata
type Error struct {
	id        string
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	details   map[string]interface{}
	operation string

	stackTrace []StackFrame

	// Localization
	messageKey  string
	messageArgs []interface{}
}

// StackFrame represents a single frame in the stack trace
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		id:         uuid.NewString(),
		message:    message,
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		details:    make(map[string]interface{}),
		stackTrace: captureStackTrace(3),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	e := New(fmt.Sprintf(format, args...))
	e.stackTrace = captureStackTrace(3)
	return e
}

// Wrap wraps an existing error with additional context. Code, severity,
// details and localization data of a wrapped *Error are carried over.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		id:         uuid.NewString(),
		message:    message,
		cause:      err,
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		details:    make(map[string]interface{}),
		stackTrace: captureStackTrace(3),
	}

	var inner *Error
	if errors.As(err, &inner) {
		wrapped.code = inner.code
		wrapped.severity = inner.severity
		wrapped.messageKey = inner.messageKey
		wrapped.messageArgs = inner.messageArgs
		for k, v := range inner.details {
			wrapped.details[k] = v
		}
	}
	return wrapped
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code. The severity follows the code unless it was
// set explicitly before.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithMessage records the localization key and positional arguments the
// message was rendered from
func (e *Error) WithMessage(key string, args ...interface{}) *Error {
	e.messageKey = key
	e.messageArgs = args
	return e
}

// ID returns the unique identifier of this error occurrence
func (e *Error) ID() string {
	return e.id
}

// Message returns the error message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error occurred
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// StackTrace returns the stack trace
func (e *Error) StackTrace() []StackFrame {
	result := make([]StackFrame, len(e.stackTrace))
	copy(result, e.stackTrace)
	return result
}

// MessageKey returns the localization message key
func (e *Error) MessageKey() string {
	return e.messageKey
}

// MessageArgs returns the localization message arguments
func (e *Error) MessageArgs() []interface{} {
	if e.messageArgs == nil {
		return nil
	}
	result := make([]interface{}, len(e.messageArgs))
	copy(result, e.messageArgs)
	return result
}

// HTTPStatus returns the HTTP status class of the error code
func (e *Error) HTTPStatus() int {
	return e.code.HTTPStatus()
}

// String returns a one line description for diagnostics:
// "[CODE/severity] operation: message {k=v ...} cause=... id=..."
func (e *Error) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s/%s] ", e.code, e.severity)
	if e.operation != "" {
		b.WriteString(e.operation + ": ")
	}
	b.WriteString(e.message)

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = fmt.Sprintf("%s=%v", k, e.details[k])
		}
		b.WriteString(" {" + strings.Join(pairs, " ") + "}")
	}

	if e.cause != nil {
		b.WriteString(" cause=" + strconv.Quote(e.cause.Error()))
	}
	b.WriteString(" id=" + e.id)
	return b.String()
}

type errorJSON struct {
	ID          string                 `json:"id"`
	Message     string                 `json:"message"`
	Code        Code                   `json:"code"`
	Severity    string                 `json:"severity"`
	Timestamp   string                 `json:"timestamp"`
	Operation   string                 `json:"operation,omitempty"`
	Details     map[string]interface{} `json:"details,omitempty"`
	Cause       string                 `json:"cause,omitempty"`
	MessageKey  string                 `json:"message_key,omitempty"`
	MessageArgs []interface{}          `json:"message_args,omitempty"`
	StackTrace  []StackFrame           `json:"stack_trace,omitempty"`
}

// MarshalJSON encodes the error with sorted detail keys
func (e *Error) MarshalJSON() ([]byte, error) {
	out := errorJSON{
		ID:          e.id,
		Message:     e.message,
		Code:        e.code,
		Severity:    e.severity.String(),
		Timestamp:   e.timestamp.Format(time.RFC3339Nano),
		Operation:   e.operation,
		Details:     e.details,
		MessageKey:  e.messageKey,
		MessageArgs: e.messageArgs,
		StackTrace:  e.stackTrace,
	}
	if e.cause != nil {
		out.Cause = e.cause.Error()
	}
	return errorJSONAPI.Marshal(out)
}

var errorJSONAPI = jsoniter.Config{SortMapKeys: true, EscapeHTML: false}.Froze()

// captureStackTrace captures the current stack trace
func captureStackTrace(skip int) []StackFrame {
	pcs := make([]uintptr, MaxStackFrames)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	result := make([]StackFrame, 0, n)
	for {
		frame, more := frames.Next()
		result = append(result, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
	return result
}

// As returns the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// HasCode checks if any *Error in the chain carries the given code
func HasCode(err error, code Code) bool {
	if e, ok := As(err); ok {
		return e.code == code
	}
	return false
}

// GetCode returns the error code from an error, or CodeUnknown
func GetCode(err error) Code {
	if e, ok := As(err); ok {
		return e.code
	}
	return CodeUnknown
}

// GetSeverity returns the error severity from an error, or SeverityMedium
func GetSeverity(err error) Severity {
	if e, ok := As(err); ok {
		return e.severity
	}
	return SeverityMedium
}

// HTTPStatus returns the HTTP status for err; 500 for errors without a code
func HTTPStatus(err error) int {
	return GetCode(err).HTTPStatus()
}

// IsInvalidArgument reports a caller contract violation
func IsInvalidArgument(err error) bool {
	return HasCode(err, CodeInvalidArgument)
}

// IsValidationFailure reports a business rule violated by user input
func IsValidationFailure(err error) bool {
	return HasCode(err, CodeValidationFailed)
}

// IsMissingResource reports a message key or bundle that could not be found
func IsMissingResource(err error) bool {
	return HasCode(err, CodeMissingResource)
}
