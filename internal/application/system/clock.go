package system

import "time"

// Clock is the monotonic time source the simulator samples once per tick
type Clock interface {
	Now() time.Duration
}

// WallClock measures real time since it was created
type WallClock struct {
	start time.Time
}

// NewWallClock creates a clock starting at zero now
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Now() time.Duration {
	return time.Since(c.start)
}

// StepClock is a deterministic clock for headless runs and tests. Every call
// to Now returns the current time and then advances it by step.
type StepClock struct {
	now  time.Duration
	step time.Duration
}

// NewStepClock creates a clock at zero advancing by step per reading
func NewStepClock(step time.Duration) *StepClock {
	return &StepClock{step: step}
}

// NewTPSClock creates a step clock matching a ticks-per-second rate
func NewTPSClock(tps int) *StepClock {
	return NewStepClock(time.Second / time.Duration(tps))
}

func (c *StepClock) Now() time.Duration {
	now := c.now
	c.now += c.step
	return now
}

// Advance moves the clock forward without a reading
func (c *StepClock) Advance(d time.Duration) {
	c.now += d
}
