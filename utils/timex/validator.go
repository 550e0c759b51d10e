// File: validator.go
// Title: Date Time Validator
// Description: Strict ordering checks on dates and epoch milliseconds that
//              fail with localized validation errors.
// Author: bastawesy
// Version: v0.2.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Injected resolver and clock, typed failures
// - 2026-10-18 v0.2.1: Key fallback only with KeyAsMessage

package timex

import (
	"time"

	ruerror "github.com/bastawesy/reactorutils/core/error"
	rulog "github.com/bastawesy/reactorutils/core/log"
)

// DefaultLocale is the locale of validation messages unless WithLocale
// selects another
const DefaultLocale = "en"

// ValidatorOptions configures a Validator
type ValidatorOptions struct {
	Resolver MessageResolver
	Clock    Clock  // default: RealClock
	Locale   string // default: DefaultLocale
	Logger   *rulog.Logger

	// KeyAsMessage reports failures with the message key as text when no
	// Resolver is set. Without it a validator lacking a resolver can still
	// compute day bounds but every failed check returns INVALID_ARGUMENT.
	KeyAsMessage bool
}

// Validator checks date ranges and computes day boundaries.
// It is immutable and safe for concurrent use.
type Validator struct {
	resolver     MessageResolver
	keyAsMessage bool
	clock        Clock
	locale       string
	logger       *rulog.Logger
}

// NewValidator creates a validator using the host clock
func NewValidator(resolver MessageResolver) *Validator {
	return NewValidatorWithOptions(ValidatorOptions{Resolver: resolver})
}

// NewValidatorWithOptions creates a validator from options
func NewValidatorWithOptions(options ValidatorOptions) *Validator {
	v := &Validator{
		resolver:     options.Resolver,
		keyAsMessage: options.KeyAsMessage,
		clock:        options.Clock,
		locale:       options.Locale,
		logger:       options.Logger,
	}
	if v.clock == nil {
		v.clock = RealClock{}
	}
	if v.locale == "" {
		v.locale = DefaultLocale
	}
	if v.logger == nil {
		v.logger = rulog.GetDefault()
	}
	v.logger = v.logger.WithName("timex")
	return v
}

// WithLocale returns a copy that resolves messages in locale
func (v *Validator) WithLocale(locale string) *Validator {
	clone := *v
	clone.locale = locale
	return &clone
}

// WithClock returns a copy that reads time from clock
func (v *Validator) WithClock(clock Clock) *Validator {
	clone := *v
	clone.clock = clock
	return &clone
}

// Locale returns the locale used for validation messages
func (v *Validator) Locale() string {
	return v.locale
}

// ValidateFirstBeforeSecond requires start to be strictly before end.
//
// A nil start or end is a programming error and yields an error with code
// INVALID_ARGUMENT. Equal or reversed dates yield a VALIDATION_FAILED
// error (HTTP 400) carrying the message for key formatted with params.
// A failing message lookup is returned as is.
func (v *Validator) ValidateFirstBeforeSecond(start, end *time.Time, key string, params ...any) error {
	if start == nil || end == nil {
		return ruerror.New("start and end dates are required").
			WithCode(ruerror.CodeInvalidArgument).
			WithOperation("timex.ValidateFirstBeforeSecond").
			WithDetail("start_present", start != nil).
			WithDetail("end_present", end != nil)
	}

	if start.Before(*end) {
		return nil
	}

	message, err := v.resolve(key, params)
	if err != nil {
		return err
	}

	v.logger.Debug("date order validation failed", rulog.Fields{
		"message_key": key,
		"locale":      v.locale,
	})

	return ruerror.New(message).
		WithCode(ruerror.CodeValidationFailed).
		WithOperation("timex.ValidateFirstBeforeSecond").
		WithMessage(key, params...)
}

// ValidateDateFromAndDateTo requires from to be strictly before to, both
// given as epoch milliseconds. The check is skipped when either is nil.
func (v *Validator) ValidateDateFromAndDateTo(from, to *int64, key string, params ...any) error {
	if from == nil || to == nil {
		return nil
	}
	return v.ValidateFirstBeforeSecond(EpochMillisToDate(from), EpochMillisToDate(to), key, params...)
}

// ValidateDateInTheFuture requires ms to be strictly after the current
// time, read at millisecond precision. A value equal to now fails.
// The check is skipped when ms is nil.
func (v *Validator) ValidateDateInTheFuture(ms *int64, key string, params ...any) error {
	if ms == nil {
		return nil
	}
	now := time.UnixMilli(v.clock.Now().UnixMilli())
	return v.ValidateFirstBeforeSecond(&now, EpochMillisToDate(ms), key, params...)
}

func (v *Validator) resolve(key string, params []any) (string, error) {
	if v.resolver == nil {
		if v.keyAsMessage {
			return key, nil
		}
		return "", ruerror.New("validator has no message resolver").
			WithCode(ruerror.CodeInvalidArgument).
			WithOperation("timex.resolve").
			WithDetail("message_key", key)
	}
	return v.resolver.Resolve(key, v.locale, params...)
}
