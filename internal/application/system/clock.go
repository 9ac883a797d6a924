package system

import "time"

// Clock reports elapsed time since some fixed origin
type Clock interface {
	Now() time.Duration
}

// WallClock measures monotonic wall time from its creation
type WallClock struct {
	start time.Time
}

// NewWallClock creates a clock starting at zero
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created
func (c *WallClock) Now() time.Duration {
	return time.Since(c.start)
}
