package animation

import "time"

// Clock reports seconds elapsed since it started. Readings never decrease.
type Clock interface {
	Elapsed() float64
}

// MonotonicClock starts when created and is never reset.
type MonotonicClock struct {
	start time.Time
}

// NewClock returns a clock started now.
func NewClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Elapsed returns seconds since the clock started, read from the monotonic clock.
func (c *MonotonicClock) Elapsed() float64 {
	return time.Since(c.start).Seconds()
}
