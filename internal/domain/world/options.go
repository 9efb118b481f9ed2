package world

import "sync/atomic"

// Options are the display toggles. They may be flipped from any goroutine
// at any time; the simulator reads each once per tick.
type Options struct {
	ShowFPS    atomic.Bool
	ShowBounds atomic.Bool
	ShowGrid   atomic.Bool
}

// Snapshot is a consistent copy of Options for one tick
type Snapshot struct {
	ShowFPS    bool
	ShowBounds bool
	ShowGrid   bool
}

// NewOptions creates toggles with the given initial values
func NewOptions(showFPS, showBounds, showGrid bool) *Options {
	o := &Options{}
	o.ShowFPS.Store(showFPS)
	o.ShowBounds.Store(showBounds)
	o.ShowGrid.Store(showGrid)
	return o
}

// Snapshot reads every toggle once
func (o *Options) Snapshot() Snapshot {
	return Snapshot{
		ShowFPS:    o.ShowFPS.Load(),
		ShowBounds: o.ShowBounds.Load(),
		ShowGrid:   o.ShowGrid.Load(),
	}
}

// Toggle flips a toggle and returns its new value
func Toggle(b *atomic.Bool) bool {
	for {
		old := b.Load()
		if b.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
