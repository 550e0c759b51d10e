// File: safex.go
// Title: Safe Execution
// Description: Runs fallible functions and turns errors and panics into
//              explicit results or default values.
// Author: bastawesy
// Version: v0.1.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.1: AsIntOr is limited to the 32 bit int range

package safex

import (
	"fmt"
	"strconv"
	"strings"

	ruerror "github.com/bastawesy/reactorutils/core/error"
	rulog "github.com/bastawesy/reactorutils/core/log"
)

// Result holds the outcome of Try
type Result[T any] struct {
	Value T
	Err   error
}

// OK reports whether the call succeeded
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// OrElse returns Value on success and def otherwise
func (r Result[T]) OrElse(def T) T {
	if r.Err != nil {
		return def
	}
	return r.Value
}

// Get returns Value and Err
func (r Result[T]) Get() (T, error) {
	return r.Value, r.Err
}

// Try runs fn. A panic inside fn is recovered and reported as an error
// with code INTERNAL.
func Try[T any](fn func() (T, error)) (result Result[T]) {
	defer func() {
		if recovered := recover(); recovered != nil {
			var zero T
			result = Result[T]{Value: zero, Err: panicError(recovered)}
		}
	}()

	value, err := fn()
	if err != nil {
		var zero T
		return Result[T]{Value: zero, Err: err}
	}
	return Result[T]{Value: value}
}

// ExecuteSafe runs fn and returns def if it fails or panics. Failures are
// logged at error level.
func ExecuteSafe[T any](fn func() (T, error), def T) T {
	result := Try(fn)
	if result.Err != nil {
		logger().ErrorWithErr("execution failed, returning default value", result.Err)
		return def
	}
	return result.Value
}

// AsIntOr parses text as a base 10 32 bit int, returning def when it is
// not one. Surrounding whitespace is not accepted.
func AsIntOr(text string, def int) int {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		logger().ErrorWithErr("failed to parse int, returning default value", err, rulog.Fields{
			"text":    text,
			"default": def,
		})
		return def
	}
	return int(n)
}

func panicError(recovered interface{}) error {
	if err, ok := recovered.(error); ok {
		return ruerror.Wrap(err, "recovered from panic").
			WithCode(ruerror.CodeInternal).
			WithOperation("safex.Try")
	}
	return ruerror.New(strings.TrimSpace(fmt.Sprintf("recovered from panic: %v", recovered))).
		WithCode(ruerror.CodeInternal).
		WithOperation("safex.Try").
		WithDetail("panic", fmt.Sprint(recovered))
}

func logger() *rulog.Logger {
	return rulog.GetDefault().WithName("safex")
}
