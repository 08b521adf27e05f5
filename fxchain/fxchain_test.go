package fxchain_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/reaccess/reaccess"
	"github.com/reaccess/reaccess/fxchain"
	"github.com/reaccess/reaccess/hostsim"
	"github.com/reaccess/reaccess/narrate"
)

func env(sim *hostsim.Sim) reaccess.Env {
	return reaccess.Env{Host: sim}
}

func entries(t *testing.T, it *fxchain.Iterator) []fxchain.Entry {
	t.Helper()
	var ret []fxchain.Entry
	for e := range it.Entries() {
		ret = append(ret, e)
	}
	return ret
}

const containerTrack = `
tracks:
  - fx:
      - name: "VST: ReaEQ (Cockos)"
      - name: "Container"
        children:
          - name: "JS: Gate (Cockos)"
          - name: "VST: ReaComp (Cockos)"
      - name: "VST: ReaDelay (Cockos)"
`

func TestContainerTraversal(t *testing.T) {
	sim := hostsim.MustParse(containerTrack)
	it, err := fxchain.NewTrackIterator(env(sim), sim.Track(0))
	if err != nil {
		t.Fatalf("NewTrackIterator failed: %v", err)
	}
	expected := []fxchain.Entry{
		{FX: 0, Name: "1 ReaEQ", Level: 1},
		{FX: 1, Name: "2 Container", Level: 1, Container: true},
		{FX: 0x2000006, Name: "1 Gate (Cockos)", Level: 2},
		{FX: 0x200000A, Name: "2 ReaComp", Level: 2},
		{FX: 2, Name: "3 ReaDelay", Level: 1},
	}
	if got := entries(t, it); !reflect.DeepEqual(got, expected) {
		t.Fatalf("got %+v, expected %+v", got, expected)
	}
	if it.Next() {
		t.Fatalf("Next after the end returned true")
	}
}

const deepTrack = `
tracks:
  - fx:
      - name: A
        children:
          - name: B
          - name: C
            children:
              - name: D
              - name: E
                container: true
          - name: F
      - name: G
    recFx:
      - name: R0
      - name: R1
        children:
          - name: R1a
`

func TestDeepTraversal(t *testing.T) {
	sim := hostsim.MustParse(deepTrack)
	it, err := fxchain.NewTrackIterator(env(sim), sim.Track(0))
	if err != nil {
		t.Fatalf("NewTrackIterator failed: %v", err)
	}
	fn, err := reaccess.ResolveFx(sim, reaccess.TrackFX)
	if err != nil {
		t.Fatalf("ResolveFx failed: %v", err)
	}
	var order []string
	var levels []int
	seen := map[int]bool{}
	for e := range it.Entries() {
		name, ok := fn.GetFXName(sim.Track(0), e.FX)
		if !ok {
			t.Fatalf("index %#x does not address an effect", e.FX)
		}
		if seen[e.FX] {
			t.Fatalf("index %#x visited twice", e.FX)
		}
		seen[e.FX] = true
		order = append(order, name)
		levels = append(levels, e.Level)
	}
	if expected := []string{"A", "B", "C", "D", "E", "F", "G", "R0", "R1", "R1a"}; !reflect.DeepEqual(order, expected) {
		t.Fatalf("order: got %v, expected %v", order, expected)
	}
	if expected := []int{1, 2, 2, 3, 3, 2, 1, 1, 1, 2}; !reflect.DeepEqual(levels, expected) {
		t.Fatalf("levels: got %v, expected %v", levels, expected)
	}
}

func TestHandComputedIndices(t *testing.T) {
	sim := hostsim.MustParse(deepTrack)
	it, err := fxchain.NewTrackIterator(env(sim), sim.Track(0))
	if err != nil {
		t.Fatalf("NewTrackIterator failed: %v", err)
	}
	// A holds 3 effects in a chain of 2: multiplier 3, base 0x2000001.
	// C at 0x2000001+2*3 holds 2 effects: multiplier 3*4, base C.
	c := 0x2000001 + 2*3
	expected := []int{
		0,
		0x2000001 + 1*3,
		c,
		c + 1*12,
		c + 2*12,
		0x2000001 + 3*3,
		1,
		0x1000000,
		0x1000001,
		0x1000000 + 0x2000002 + 1*3,
	}
	var got []int
	for e := range it.Entries() {
		got = append(got, e.FX)
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("got %#x, expected %#x", got, expected)
	}
}

func TestRecNames(t *testing.T) {
	sim := hostsim.MustParse(`
master:
  recFx: [{name: "VST: ReaLimit (Cockos)"}]
tracks:
  - recFx: [{name: "VST: ReaTune (Cockos)"}]
`)
	for _, c := range []struct {
		track    reaccess.Handle
		expected string
	}{
		{sim.MasterTrack(), "1 ReaLimit [monitor]"},
		{sim.Track(0), "1 ReaTune [input]"},
	} {
		it, err := fxchain.NewTrackIterator(env(sim), c.track)
		if err != nil {
			t.Fatalf("NewTrackIterator failed: %v", err)
		}
		got := entries(t, it)
		if len(got) != 1 || got[0].Name != c.expected || got[0].FX != reaccess.RecBase {
			t.Errorf("got %+v, expected %q at %#x", got, c.expected, reaccess.RecBase)
		}
	}
}

func TestTakeHasNoRecChain(t *testing.T) {
	sim := hostsim.MustParse(`
tracks:
  - items:
      - takes:
          - fx: [{name: "VST: ReaPitch (Cockos)"}]
`)
	take := sim.Take(sim.TrackMediaItem(sim.Track(0), 0), 0)
	it, err := fxchain.NewTakeIterator(env(sim), take)
	if err != nil {
		t.Fatalf("NewTakeIterator failed: %v", err)
	}
	if got := entries(t, it); len(got) != 1 || got[0].Name != "1 ReaPitch" {
		t.Fatalf("got %+v", got)
	}
}

func TestIteratorMissingFunction(t *testing.T) {
	sim := hostsim.MustParse(`missing: [TrackFX_GetRecCount]`)
	if _, err := fxchain.NewTrackIterator(env(sim), sim.MasterTrack()); !errors.Is(err, reaccess.ErrMissingFunc) {
		t.Fatalf("got %v, expected ErrMissingFunc", err)
	}
}

type chooser struct {
	fx     int
	ok     bool
	called bool
}

func (c *chooser) Choose(m fxchain.Menu) (int, bool) {
	c.called = true
	return c.fx, c.ok
}

func TestMenu(t *testing.T) {
	sim := hostsim.MustParse(containerTrack)
	it, err := fxchain.NewTrackIterator(env(sim), sim.Track(0))
	if err != nil {
		t.Fatalf("NewTrackIterator failed: %v", err)
	}
	m := fxchain.BuildMenu(env(sim), it)
	if m.Count != 5 {
		t.Fatalf("count: got %v, expected 5", m.Count)
	}
	expected := []fxchain.MenuItem{
		{Name: "1 ReaEQ", FX: 0},
		{Name: "2 Container", FX: 1, Sub: []fxchain.MenuItem{
			{Name: "(Container Parameters)", FX: 1},
			{Name: "1 Gate (Cockos)", FX: 0x2000006},
			{Name: "2 ReaComp", FX: 0x200000A},
		}},
		{Name: "3 ReaDelay", FX: 2},
	}
	if !reflect.DeepEqual(m.Items, expected) {
		t.Fatalf("got %+v, expected %+v", m.Items, expected)
	}
	c := &chooser{fx: 0x200000A, ok: true}
	if fx, ok, err := m.Choose(c); err != nil || !ok || fx != 0x200000A || !c.called {
		t.Fatalf("choose: got %#x %v %v", fx, ok, err)
	}
	if _, ok, _ := m.Choose(&chooser{}); ok {
		t.Fatalf("cancelled choice reported ok")
	}
}

func TestMenuSingleAndEmpty(t *testing.T) {
	sim := hostsim.MustParse(`
tracks:
  - fx: [{name: "VST: ReaEQ (Cockos)"}]
  - {}
`)
	it, _ := fxchain.NewTrackIterator(env(sim), sim.Track(0))
	c := &chooser{}
	if fx, ok, err := fxchain.BuildMenu(env(sim), it).Choose(c); err != nil || !ok || fx != 0 || c.called {
		t.Fatalf("single effect: got %v %v %v, chooser called %v", fx, ok, err, c.called)
	}
	it, _ = fxchain.NewTrackIterator(env(sim), sim.Track(1))
	if _, _, err := fxchain.BuildMenu(env(sim), it).Choose(c); !errors.Is(err, fxchain.ErrNoFX) {
		t.Fatalf("no effects: got %v, expected ErrNoFX", err)
	}
}

func TestBypassReport(t *testing.T) {
	sim := hostsim.MustParse(containerTrack + `
focus: {track: 0, fx: 0x2000006}
`)
	sim.Project().Tracks[0].FX[1].Children[0].Bypassed = true
	msgs, ok := fxchain.BypassReport(env(sim), false)
	if expected := []string{"bypassed", "6"}; !ok || !reflect.DeepEqual(msgs, expected) {
		t.Fatalf("got %v, expected %v", msgs, expected)
	}
	msgs, _ = fxchain.BypassReport(env(sim), true)
	if msgs[0] != "active" {
		t.Fatalf("about to toggle: got %v", msgs)
	}
}

func TestBypassReporterDelay(t *testing.T) {
	sim := hostsim.MustParse(containerTrack + `
focus: {track: 0, fx: 2}
`)
	var clock narrate.ManualClock
	var rec narrate.Recorder
	r := fxchain.NewBypassReporter(env(sim), &rec, &clock)
	r.Focused()
	clock.Advance(900 * time.Millisecond)
	sim.Project().Focus.FX = 0
	r.Focused()
	clock.Advance(900 * time.Millisecond)
	if len(rec.Messages) != 0 {
		t.Fatalf("reported too early: %v", rec.Messages)
	}
	clock.Advance(100 * time.Millisecond)
	if expected := []string{"active"}; !reflect.DeepEqual(rec.Messages, expected) {
		t.Fatalf("got %v, expected %v", rec.Messages, expected)
	}
}
