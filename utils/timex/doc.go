// File: doc.go
// Title: Time Utilities Package Documentation
// Description: Package documentation for date conversions and validation.
// Author: bastawesy
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18

// Package timex converts between epoch milliseconds, instants, calendar
// dates and local date-times, and validates date ranges.
//
// # Units
//
// Most conversions use milliseconds since the Unix epoch. Two do not:
//
//	CalendarDateToEpochDayNumber   days since 1970-01-01
//	LocalDateTimeToEpochSeconds    seconds since the epoch
//
// # Time zone
//
// Calendar dates and local date-times carry no zone. They are interpreted
// in time.Local, which is read on every call.
//
// # Nil values
//
// Optional values are pointers. Every conversion taking a pointer returns
// nil for nil input. DateToCalendarDate and DateToLocalDateTime require a
// non-nil time.
//
// # Validation
//
// Ranges must be strictly increasing; equal bounds fail, and so does a
// "future" date equal to now:
//
//	v := timex.NewValidator(bundle).WithLocale("ar")
//	err := v.ValidateDateFromAndDateTo(req.From, req.To,
//		i18n.KeyFirstDateShouldBeBeforeSecondDate, "validFrom", "validTo")
//	if ruerror.IsValidationFailure(err) {
//		// HTTP 400 with the localized message
//	}
package timex
