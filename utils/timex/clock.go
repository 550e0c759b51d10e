// File: clock.go
// Title: Clock
// Description: Source of the current time for validation and day boundary
//              helpers.
// Author: bastawesy
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package timex

import (
	"sync"
	"time"
)

// Clock provides the current time. It is read on every call and never
// cached.
type Clock interface {
	Now() time.Time
}

// RealClock reads the host clock
type RealClock struct{}

// Now returns time.Now()
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a settable clock for tests
type FixedClock struct {
	mu      sync.Mutex
	current time.Time
}

// NewFixedClock creates a clock stopped at t
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

// Now returns the clock's current time
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Set moves the clock to t
func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

// Advance moves the clock forward by d
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

var (
	_ Clock = RealClock{}
	_ Clock = (*FixedClock)(nil)
)
