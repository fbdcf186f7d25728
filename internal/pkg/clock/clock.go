package clock

import "time"

// Clock is the time source used for promotion activity windows.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant until moved.
type FixedClock struct {
	at time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{at: t}
}

func (c *FixedClock) Now() time.Time {
	return c.at
}

func (c *FixedClock) Set(t time.Time) {
	c.at = t
}

func (c *FixedClock) Advance(d time.Duration) {
	c.at = c.at.Add(d)
}
