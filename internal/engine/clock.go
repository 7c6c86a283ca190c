package engine

import "time"

// Clock is the audio clock every judgement is measured against. It must never
// run backwards.
type Clock interface {
	Now() time.Duration
}

type ClockFunc func() time.Duration

func (f ClockFunc) Now() time.Duration {
	return f()
}

// ManualClock only moves when told to. Replays and tests drive the engine with it.
type ManualClock struct {
	now time.Duration
}

func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Set moves the clock to d; earlier times are ignored.
func (c *ManualClock) Set(d time.Duration) {
	if d > c.now {
		c.now = d
	}
}

func (c *ManualClock) Advance(d time.Duration) {
	c.Set(c.now + d)
}
