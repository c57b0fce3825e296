package data

import "time"

// Clock provides the current time and can be fixed for tests. Repositories
// stamp created_at/updated_at through it, and services pass its Now() into
// the work-queue engine so derivations stay reproducible.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using real system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock implements Clock with a settable fixed time for tests.
type FixedClock struct {
	t time.Time
}

// NewFixedClock creates a FixedClock pinned to t.
func NewFixedClock(t time.Time) *FixedClock { return &FixedClock{t: t} }

// Now returns the fixed time.
func (c *FixedClock) Now() time.Time { return c.t }

// Set repins the clock.
func (c *FixedClock) Set(t time.Time) { c.t = t }

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
