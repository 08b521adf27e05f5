package narrate_test

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"github.com/reaccess/reaccess/narrate"
)

func TestDelayedLastRequestWins(t *testing.T) {
	var clock narrate.ManualClock
	var rec narrate.Recorder
	d := narrate.Delayed{Clock: &clock}
	d.Replace(time.Second, func() { rec.Announce("first", false) })
	clock.Advance(500 * time.Millisecond)
	d.Replace(time.Second, func() { rec.Announce("second", false) })
	clock.Advance(600 * time.Millisecond)
	if len(rec.Messages) != 0 {
		t.Fatalf("announced too early: %v", rec.Messages)
	}
	if !d.Pending() || clock.Pending() != 1 {
		t.Fatalf("expected exactly one pending task")
	}
	clock.Advance(400 * time.Millisecond)
	if expected := []string{"second"}; !reflect.DeepEqual(rec.Messages, expected) {
		t.Fatalf("got %v, expected %v", rec.Messages, expected)
	}
	if d.Pending() {
		t.Fatalf("task still pending after running")
	}
}

func TestDelayedCancel(t *testing.T) {
	var clock narrate.ManualClock
	ran := false
	d := narrate.Delayed{Clock: &clock}
	d.Replace(time.Second, func() { ran = true })
	d.Cancel()
	clock.Advance(time.Minute)
	if ran {
		t.Fatalf("cancelled task ran")
	}
}

func TestRescheduleFromCallback(t *testing.T) {
	var clock narrate.ManualClock
	var d narrate.Delayed
	d.Clock = &clock
	n := 0
	var tick func()
	tick = func() {
		n++
		if n < 3 {
			d.Replace(time.Second, tick)
		}
	}
	d.Replace(time.Second, tick)
	clock.Advance(10 * time.Second)
	if n != 3 {
		t.Fatalf("got %v runs, expected 3", n)
	}
}

func TestWriterAnnouncer(t *testing.T) {
	var b bytes.Buffer
	a := narrate.WriterAnnouncer{W: &b}
	a.Announce("active", false)
	a.Announce("3", false)
	if got := b.String(); got != "active\n3\n" {
		t.Fatalf("got %q", got)
	}
}
