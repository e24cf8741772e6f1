package core

import (
	"math"
	"time"
)

// Clock supplies the per-frame delta time in seconds.
// Drivers own the clock; games only ever see the resulting dt.
type Clock interface {
	// Delta returns seconds elapsed since the previous call.
	Delta() float64
}

// FixedClock returns a constant 1/tickRate delta. Runs driven by a FixedClock
// are reproducible from their seed and input edges alone.
type FixedClock struct {
	dt float64
}

// NewFixedClock creates a fixed-step clock for the given tick rate.
func NewFixedClock(tickRate int) *FixedClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FixedClock{dt: 1.0 / float64(tickRate)}
}

// Delta returns the fixed step.
func (c *FixedClock) Delta() float64 {
	return c.dt
}

// MonotonicClock measures wall time between frames using the monotonic
// reading carried by time.Time.
type MonotonicClock struct {
	now  func() time.Time
	last time.Time
}

// NewMonotonicClock creates a clock that starts measuring from now.
func NewMonotonicClock() *MonotonicClock {
	c := &MonotonicClock{now: time.Now}
	c.last = c.now()
	return c
}

// Delta returns seconds since the last call, sanitized.
func (c *MonotonicClock) Delta() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return SanitizeDelta(dt)
}

// SanitizeDelta clamps invalid frame deltas (negative, NaN, infinite) to zero.
// Large finite deltas pass through untouched.
func SanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return dt
}
