package narrate

import (
	"slices"
	"time"
)

type (
	// ManualClock only moves when Advance is called. Callbacks run inside
	// Advance, in the order they fall due.
	ManualClock struct {
		now    time.Duration
		seq    int
		timers []*manualTimer
	}

	manualTimer struct {
		c       *ManualClock
		at      time.Duration
		seq     int
		f       func()
		stopped bool
	}
)

func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.seq++
	t := &manualTimer{c: c, at: c.now + d, seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, running every callback that falls
// due, including ones scheduled by earlier callbacks.
func (c *ManualClock) Advance(d time.Duration) {
	end := c.now + d
	for {
		i := c.next(end)
		if i < 0 {
			break
		}
		t := c.timers[i]
		c.timers = slices.Delete(c.timers, i, i+1)
		c.now = t.at
		t.f()
	}
	c.now = end
}

// Pending is the number of timers that have neither fired nor been stopped.
func (c *ManualClock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (c *ManualClock) next(end time.Duration) int {
	best := -1
	for i, t := range c.timers {
		if t.stopped || t.at > end {
			continue
		}
		if best < 0 || t.at < c.timers[best].at || (t.at == c.timers[best].at && t.seq < c.timers[best].seq) {
			best = i
		}
	}
	return best
}

func (t *manualTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	return slices.Contains(t.c.timers, t)
}
