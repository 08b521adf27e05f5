// Package narrate delivers short messages to the user and schedules the ones
// that should wait for the host to settle.
package narrate

import (
	"fmt"
	"io"
	"sync"
	"time"
)

type (
	// Announcer speaks or brailles msg. interrupt cancels whatever is being
	// spoken.
	Announcer interface {
		Announce(msg string, interrupt bool)
	}

	// WriterAnnouncer writes each message on its own line.
	WriterAnnouncer struct {
		W io.Writer
	}

	// Recorder keeps messages in memory.
	Recorder struct {
		Messages []string
	}

	Timer interface {
		Stop() bool
	}

	Clock interface {
		AfterFunc(d time.Duration, f func()) Timer
	}

	// RealClock runs callbacks after real time has passed. Post, when set,
	// is given every callback to run it on the thread owning the host; when
	// nil, callbacks run on the timer's goroutine.
	RealClock struct {
		Post func(func())
	}

	// Delayed holds at most one pending task. Scheduling a new one cancels
	// the previous one, so the last request wins.
	Delayed struct {
		Clock Clock

		mu      sync.Mutex
		pending Timer
		gen     uint64
	}
)

func (w WriterAnnouncer) Announce(msg string, interrupt bool) {
	fmt.Fprintln(w.W, msg)
}

func (r *Recorder) Announce(msg string, interrupt bool) {
	r.Messages = append(r.Messages, msg)
}

func (c RealClock) AfterFunc(d time.Duration, f func()) Timer {
	if c.Post == nil {
		return time.AfterFunc(d, f)
	}
	return time.AfterFunc(d, func() { c.Post(f) })
}

// Replace cancels any pending task and schedules f to run after d.
func (d *Delayed) Replace(after time.Duration, f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	gen := d.gen
	d.pending = d.clock().AfterFunc(after, func() {
		d.mu.Lock()
		if gen != d.gen {
			// replaced or cancelled after the timer had already fired
			d.mu.Unlock()
			return
		}
		d.pending = nil
		d.gen++
		d.mu.Unlock()
		f()
	})
}

// Cancel drops the pending task, if any.
func (d *Delayed) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

func (d *Delayed) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

func (d *Delayed) stopLocked() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	d.gen++
}

func (d *Delayed) clock() Clock {
	if d.Clock == nil {
		return RealClock{}
	}
	return d.Clock
}
