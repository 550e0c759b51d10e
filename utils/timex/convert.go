// File: convert.go
// Title: Date and Time Conversions
// Description: Conversions between epoch milliseconds, instants, calendar
//              dates and local date-times. The host local zone (time.Local)
//              is read on every call.
// Author: bastawesy
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Nil propagating conversions, day and second counts

package timex

import "time"

// Millis returns a pointer to v, for optional epoch millisecond values
func Millis(v int64) *int64 {
	return &v
}

// EpochMillisToDate returns the instant ms milliseconds after the epoch,
// in the local zone. Nil in, nil out.
func EpochMillisToDate(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms).In(time.Local)
	return &t
}

// EpochMillisToCalendarDate returns the local calendar date of the instant
func EpochMillisToCalendarDate(ms *int64) *CalendarDate {
	if ms == nil {
		return nil
	}
	d := calendarDateOf(time.UnixMilli(*ms).In(time.Local))
	return &d
}

// EpochMillisToLocalDateTime returns the local wall clock value of the
// instant at full precision
func EpochMillisToLocalDateTime(ms *int64) *LocalDateTime {
	if ms == nil {
		return nil
	}
	dt := localDateTimeOf(time.UnixMilli(*ms).In(time.Local))
	return &dt
}

// DateToEpochMillis returns the milliseconds since the epoch of t.
// Sub-millisecond precision is dropped.
func DateToEpochMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

// CalendarDateToEpochDayNumber returns the number of DAYS between
// 1970-01-01 and d. The result is a day count, not milliseconds:
// 1970-01-02 yields 1.
func CalendarDateToEpochDayNumber(d *CalendarDate) *int64 {
	if d == nil {
		return nil
	}
	days := d.EpochDay()
	return &days
}

// LocalDateTimeToEpochSeconds returns the SECONDS since the epoch of dt
// resolved in the local zone. The result is a second count, not
// milliseconds; the fraction of a second is dropped.
func LocalDateTimeToEpochSeconds(dt *LocalDateTime) *int64 {
	if dt == nil {
		return nil
	}
	sec := dt.In(time.Local).Unix()
	return &sec
}

// CalendarDateToDate returns local midnight at the start of d
func CalendarDateToDate(d CalendarDate) time.Time {
	return d.AtStartOfDay().In(time.Local)
}

// LocalDateTimeToDate returns the instant of dt in the local zone
func LocalDateTimeToDate(dt LocalDateTime) time.Time {
	return dt.In(time.Local)
}

// DateToCalendarDate returns the local calendar date of t.
// t must not be nil.
func DateToCalendarDate(t *time.Time) CalendarDate {
	return calendarDateOf(t.In(time.Local))
}

// DateToLocalDateTime returns the local wall clock value of t.
// t must not be nil.
func DateToLocalDateTime(t *time.Time) LocalDateTime {
	return localDateTimeOf(t.In(time.Local))
}
