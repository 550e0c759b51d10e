// File: bounds.go
// Title: Day Boundaries
// Description: Start and end of the current local day, optionally shifted
//              by whole calendar days, as epoch milliseconds.
// Author: bastawesy
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18

package timex

import "time"

// Now returns the current time of the validator's clock
func (v *Validator) Now() time.Time {
	return v.clock.Now()
}

// CurrentTimePlusMillis returns now plus ms, counted in whole seconds.
// The sub-second remainder of ms is discarded.
func (v *Validator) CurrentTimePlusMillis(ms int64) time.Time {
	return v.clock.Now().Add(time.Duration(ms/1000) * time.Second)
}

// TodayMinTime returns local midnight at the start of today
func (v *Validator) TodayMinTime() int64 {
	return v.MinTimeOfNowIncrementedByNumOfDays(0)
}

// MinTimeOfNowIncrementedByNumOfDays returns local midnight at the start
// of the day n calendar days after today
func (v *Validator) MinTimeOfNowIncrementedByNumOfDays(n int) int64 {
	return v.today().AddDays(n).AtStartOfDay().In(time.Local).UnixMilli()
}

// MinTimeOfNowDecrementedByNumOfDays returns local midnight at the start
// of the day n calendar days before today
func (v *Validator) MinTimeOfNowDecrementedByNumOfDays(n int) int64 {
	return v.MinTimeOfNowIncrementedByNumOfDays(-n)
}

// TodayMaxTime returns the last millisecond of today
func (v *Validator) TodayMaxTime() int64 {
	return v.MaxTimeOfNowIncrementedByNumOfDays(0)
}

// MaxTimeOfNowIncrementedByNumOfDays returns the last millisecond of the
// day n calendar days after today (23:59:59.999 local)
func (v *Validator) MaxTimeOfNowIncrementedByNumOfDays(n int) int64 {
	return v.today().AddDays(n).WithMaxTime().In(time.Local).UnixMilli()
}

// MaxTimeOfNowDecrementedByNumOfDays returns the last millisecond of the
// day n calendar days before today
func (v *Validator) MaxTimeOfNowDecrementedByNumOfDays(n int) int64 {
	return v.MaxTimeOfNowIncrementedByNumOfDays(-n)
}

func (v *Validator) today() CalendarDate {
	now := v.clock.Now()
	return DateToCalendarDate(&now)
}
