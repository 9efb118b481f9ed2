package system

import "time"

// DefaultFPSInterval is how often the displayed FPS is refreshed
const DefaultFPSInterval = 500 * time.Millisecond

// FPSCounter counts ticks and, once per interval, converts the count into a
// per-second rate. With the default interval the value is count*2.
type FPSCounter struct {
	interval time.Duration
	last     time.Duration
	count    int
	value    int
}

// NewFPSCounter creates a counter sampling every interval
func NewFPSCounter(interval time.Duration) *FPSCounter {
	if interval <= 0 {
		interval = DefaultFPSInterval
	}
	return &FPSCounter{interval: interval}
}

// Tick records one tick observed at now
func (f *FPSCounter) Tick(now time.Duration) {
	if now-f.last >= f.interval {
		f.value = f.count * int(time.Second) / int(f.interval)
		f.count = 0
		f.last = now
	}
	f.count++
}

// Value returns the last sampled rate
func (f *FPSCounter) Value() int {
	return f.value
}
