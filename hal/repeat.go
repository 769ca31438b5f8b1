package hal

import "time"

// Repeat describes keyboard auto-repeat: after Delay a held key re-issues
// KeyDown every Interval. The zero value disables repeat.
type Repeat struct {
	Delay    time.Duration
	Interval time.Duration
}

// Enabled reports whether held keys repeat at all.
func (r Repeat) Enabled() bool { return r.Interval > 0 }

// Fire reports whether a key held for held ticks (1 on the tick it went
// down) should repeat on this tick, at tps ticks per second.
func (r Repeat) Fire(held, tps int) bool {
	if !r.Enabled() || tps <= 0 || held <= 1 {
		return false
	}
	tick := time.Second / time.Duration(tps)
	delay := int((r.Delay + tick - 1) / tick)
	if delay < 1 {
		delay = 1
	}
	interval := int((r.Interval + tick/2) / tick)
	if interval < 1 {
		interval = 1
	}
	since := held - 1 - delay
	return since >= 0 && since%interval == 0
}
