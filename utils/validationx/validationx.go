// File: validationx.go
// Title: Blank Checks and Enum Validation
// Description: Null and emptiness checks for arbitrary values, collection
//              constructors and validation of string values against a
//              closed set of enum names.
// Author: bastawesy
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Reduced to blank checks and enum validation

package validationx

import (
	"reflect"
	"strings"

	ruerror "github.com/bastawesy/reactorutils/core/error"
)

// IsBlankOrNull reports whether value is nil, a nil pointer, interface,
// map, slice, channel or func, an empty string, or an empty array, slice
// or map. Whitespace-only strings are not blank. Numbers, booleans and
// structs are never blank.
func IsBlankOrNull(value interface{}) bool {
	if value == nil {
		return true
	}

	switch v := value.(type) {
	case string:
		return len(v) == 0
	case *string:
		return v == nil || len(*v) == 0
	}

	val := reflect.ValueOf(value)
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Chan, reflect.Func:
		return val.IsNil()
	case reflect.Map, reflect.Slice:
		return val.IsNil() || val.Len() == 0
	case reflect.Array, reflect.String:
		return val.Len() == 0
	default:
		return false
	}
}

// IsNotBlankOrNull is the negation of IsBlankOrNull
func IsNotBlankOrNull(value interface{}) bool {
	return !IsBlankOrNull(value)
}

// AsList returns the values as a new slice. The result is never nil.
func AsList[T any](values ...T) []T {
	list := make([]T, len(values))
	copy(list, values)
	return list
}

// AsSet returns the distinct values as a set. The result is never nil.
func AsSet[T comparable](values ...T) map[T]struct{} {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// ValidateValidEnum checks that value, if present, is one of allowed.
// Matching is exact and case sensitive. An unknown value fails with code
// NOT_ACCEPTABLE (HTTP 406) and the message errorMessage followed by the
// allowed names, e.g. "invalid status [ACTIVE, CLOSED]".
func ValidateValidEnum(value *string, allowed []string, errorMessage string) error {
	if value == nil {
		return nil
	}
	for _, name := range allowed {
		if name == *value {
			return nil
		}
	}

	return ruerror.New(errorMessage+"["+strings.Join(allowed, ", ")+"]").
		WithCode(ruerror.CodeNotAcceptable).
		WithOperation("validationx.ValidateValidEnum").
		WithDetail("value", *value).
		WithDetail("allowed", AsList(allowed...))
}

// ValidateValidEnumAndReturn validates value like ValidateValidEnum and
// returns the matching constant. A nil value has no constant to return and
// fails with code INVALID_ARGUMENT.
func ValidateValidEnumAndReturn[E ~string](value *string, allowed []E, errorMessage string) (E, error) {
	var zero E
	if value == nil {
		return zero, ruerror.New("enum value is required").
			WithCode(ruerror.CodeInvalidArgument).
			WithOperation("validationx.ValidateValidEnumAndReturn")
	}

	names := make([]string, len(allowed))
	for i, e := range allowed {
		names[i] = string(e)
	}
	if err := ValidateValidEnum(value, names, errorMessage); err != nil {
		return zero, err
	}
	return E(*value), nil
}
