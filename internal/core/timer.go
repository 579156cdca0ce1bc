package core

import "time"

// MaxFrameDelta bounds a single simulation step. Longer gaps (a suspended
// terminal, a dragged window) are treated as one slow frame.
const MaxFrameDelta = 33 * time.Millisecond

// FrameClock measures wall-clock time between frames.
type FrameClock struct {
	last time.Time
	max  time.Duration
}

// NewFrameClock creates a clock that clamps deltas to MaxFrameDelta.
func NewFrameClock() *FrameClock {
	return &FrameClock{max: MaxFrameDelta}
}

// Tick returns the seconds elapsed since the previous call, clamped to the
// clock's maximum. The first call returns 0.
func (c *FrameClock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > c.max {
		delta = c.max
	}
	return delta.Seconds()
}

// Reset forgets the previous timestamp.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}

// ClampDelta clamps a caller-supplied step in seconds to [0, MaxFrameDelta].
func ClampDelta(dt float64) float64 {
	return ClampF(dt, 0, MaxFrameDelta.Seconds())
}
