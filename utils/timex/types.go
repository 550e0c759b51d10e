// File: types.go
// Title: Calendar Date and Local Date-Time
// Description: Timezone-naive date and date-time values that are interpreted
//              in the host local zone when converted to or from an instant.
// Author: bastawesy
// Version: v0.2.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Introduced CalendarDate and LocalDateTime
// - 2026-10-18 v0.2.1: Skipped wall times resolve forward across DST gaps

package timex

import (
	"fmt"
	"time"

	ruerror "github.com/bastawesy/reactorutils/core/error"
)

const (
	// DateLayout is the text form of a CalendarDate
	DateLayout = "2006-01-02"

	// DateTimeLayout is the text form of a LocalDateTime
	DateTimeLayout = "2006-01-02T15:04:05.999999999"

	secondsPerDay = 24 * 60 * 60
)

// CalendarDate is a (year, month, day) value without time-of-day or zone
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate returns the date; out of range values are normalized
// the way time.Date does (Feb 30 becomes Mar 1 or 2).
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return calendarDateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseCalendarDate parses a date in DateLayout
func ParseCalendarDate(value string) (CalendarDate, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return CalendarDate{}, ruerror.Wrap(err, "invalid calendar date").
			WithCode(ruerror.CodeInvalidFormat).
			WithOperation("timex.ParseCalendarDate").
			WithDetail("value", value).
			WithDetail("expected_format", DateLayout)
	}
	return calendarDateOf(t), nil
}

func calendarDateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// utc anchors the date at UTC midnight for zone independent arithmetic
func (d CalendarDate) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// EpochDay returns the number of days since 1970-01-01
func (d CalendarDate) EpochDay() int64 {
	return d.utc().Unix() / secondsPerDay
}

// AddDays returns the date n calendar days later (earlier for negative n)
func (d CalendarDate) AddDays(n int) CalendarDate {
	return calendarDateOf(d.utc().AddDate(0, 0, n))
}

// AtStartOfDay returns midnight of the date
func (d CalendarDate) AtStartOfDay() LocalDateTime {
	return LocalDateTime{Date: d}
}

// WithMaxTime returns the last representable time of the date,
// 23:59:59.999999999
func (d CalendarDate) WithMaxTime() LocalDateTime {
	return LocalDateTime{Date: d, Hour: 23, Minute: 59, Second: 59, Nanosecond: 999999999}
}

// Before reports whether d is earlier than other
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.utc().Before(other.utc())
}

// After reports whether d is later than other
func (d CalendarDate) After(other CalendarDate) bool {
	return d.utc().After(other.utc())
}

// Equal reports whether both values denote the same day
func (d CalendarDate) Equal(other CalendarDate) bool {
	return d.utc().Equal(other.utc())
}

// IsZero reports whether d is the zero value
func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// String formats the date as 2006-01-02
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler
func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *CalendarDate) UnmarshalText(text []byte) error {
	parsed, err := ParseCalendarDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// LocalDateTime is a calendar date with a time-of-day and no zone
type LocalDateTime struct {
	Date       CalendarDate
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// NewLocalDateTime returns the date-time, normalized like time.Date
func NewLocalDateTime(year int, month time.Month, day, hour, min, sec, nsec int) LocalDateTime {
	return localDateTimeOf(time.Date(year, month, day, hour, min, sec, nsec, time.UTC))
}

// ParseLocalDateTime parses a date-time in DateTimeLayout. The fraction
// of a second is optional.
func ParseLocalDateTime(value string) (LocalDateTime, error) {
	t, err := time.Parse(DateTimeLayout, value)
	if err != nil {
		return LocalDateTime{}, ruerror.Wrap(err, "invalid local date-time").
			WithCode(ruerror.CodeInvalidFormat).
			WithOperation("timex.ParseLocalDateTime").
			WithDetail("value", value).
			WithDetail("expected_format", DateTimeLayout)
	}
	return localDateTimeOf(t), nil
}

func localDateTimeOf(t time.Time) LocalDateTime {
	return LocalDateTime{
		Date:       calendarDateOf(t),
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
	}
}

func (dt LocalDateTime) utc() time.Time {
	return time.Date(dt.Date.Year, dt.Date.Month, dt.Date.Day,
		dt.Hour, dt.Minute, dt.Second, dt.Nanosecond, time.UTC)
}

// In resolves the wall clock value in loc. A wall time skipped by a DST
// transition is moved forward by the length of the gap, using the offset in
// effect before the transition: 02:30 on a spring-forward night in New York
// becomes 03:30 EDT, and a skipped midnight becomes the first valid instant
// of the same day.
func (dt LocalDateTime) In(loc *time.Location) time.Time {
	wall := dt.utc()
	t := time.Date(wall.Year(), wall.Month(), wall.Day(),
		wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(), loc)
	if sameWallClock(t, wall) {
		return t
	}

	// Offsets change at most a few hours around a transition, so a day
	// earlier is safely on the old side of it
	_, before := wall.Add(-24 * time.Hour).In(loc).Zone()
	return wall.Add(-time.Duration(before) * time.Second).In(loc)
}

func sameWallClock(t, wall time.Time) bool {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := wall.Date()
	return y1 == y2 && m1 == m2 && d1 == d2 &&
		t.Hour() == wall.Hour() && t.Minute() == wall.Minute() &&
		t.Second() == wall.Second() && t.Nanosecond() == wall.Nanosecond()
}

// AddDays returns the date-time n calendar days later, keeping the
// time-of-day
func (dt LocalDateTime) AddDays(n int) LocalDateTime {
	return localDateTimeOf(dt.utc().AddDate(0, 0, n))
}

// AtStartOfDay returns midnight of the same date
func (dt LocalDateTime) AtStartOfDay() LocalDateTime {
	return dt.Date.AtStartOfDay()
}

// WithMaxTime returns 23:59:59.999999999 of the same date
func (dt LocalDateTime) WithMaxTime() LocalDateTime {
	return dt.Date.WithMaxTime()
}

// Before reports whether dt is earlier than other
func (dt LocalDateTime) Before(other LocalDateTime) bool {
	return dt.utc().Before(other.utc())
}

// After reports whether dt is later than other
func (dt LocalDateTime) After(other LocalDateTime) bool {
	return dt.utc().After(other.utc())
}

// Equal reports whether both values denote the same wall clock instant
func (dt LocalDateTime) Equal(other LocalDateTime) bool {
	return dt.utc().Equal(other.utc())
}

// IsZero reports whether dt is the zero value
func (dt LocalDateTime) IsZero() bool {
	return dt == LocalDateTime{}
}

// String formats the value as 2006-01-02T15:04:05 with the fraction of a
// second only when it is not zero
func (dt LocalDateTime) String() string {
	return dt.utc().Format(DateTimeLayout)
}

// MarshalText implements encoding.TextMarshaler
func (dt LocalDateTime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (dt *LocalDateTime) UnmarshalText(text []byte) error {
	parsed, err := ParseLocalDateTime(string(text))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}
