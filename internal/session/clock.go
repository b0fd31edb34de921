package session

import "time"

const (
	// DefaultDuration is the length of a test once the first key is typed.
	DefaultDuration = 60 * time.Second
	// TickInterval is how often the live timer is refreshed.
	TickInterval = 100 * time.Millisecond
)

// Clock measures a session against a fixed duration. It holds no goroutine:
// remaining time is derived from the start instant whenever it is asked for.
type Clock struct {
	duration  time.Duration
	startedAt time.Time
	started   bool
}

// NewClock returns a stopped clock.
func NewClock(duration time.Duration) Clock {
	return Clock{duration: duration}
}

// Start records now as the start instant. Only the first call has an effect.
func (c *Clock) Start(now time.Time) bool {
	if c.started {
		return false
	}
	c.started = true
	c.startedAt = now
	return true
}

// Started reports whether Start has been called.
func (c Clock) Started() bool {
	return c.started
}

// StartedAt returns the start instant, zero before Start.
func (c Clock) StartedAt() time.Time {
	return c.startedAt
}

// Duration returns the configured test length.
func (c Clock) Duration() time.Duration {
	return c.duration
}

// Elapsed returns time since start, capped at the duration. Zero before Start.
func (c Clock) Elapsed(now time.Time) time.Duration {
	if !c.started {
		return 0
	}
	elapsed := now.Sub(c.startedAt)
	if elapsed < 0 {
		return 0
	}
	if elapsed > c.duration {
		return c.duration
	}
	return elapsed
}

// Remaining returns the time left, floored at zero. Before Start it is the
// full duration.
func (c Clock) Remaining(now time.Time) time.Duration {
	return c.duration - c.Elapsed(now)
}

// Expired reports whether a started clock has run out.
func (c Clock) Expired(now time.Time) bool {
	return c.started && c.Remaining(now) <= 0
}
