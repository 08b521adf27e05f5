package report_test

import (
	"strings"
	"testing"

	"github.com/reaccess/reaccess"
	"github.com/reaccess/reaccess/fxchain"
	"github.com/reaccess/reaccess/hostsim"
	"github.com/reaccess/reaccess/params"
	"github.com/reaccess/reaccess/report"
	"github.com/reaccess/reaccess/session"
)

func TestSession(t *testing.T) {
	r, err := report.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	sim := hostsim.MustParse(`tracks: [{name: A, volume: 1}]`)
	src, err := params.TrackParams(reaccess.Env{Host: sim}, sim.Track(0))
	if err != nil {
		t.Fatalf("TrackParams failed: %v", err)
	}
	s, err := session.Open(src, nil, session.Options{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	var b strings.Builder
	if err := r.Session(&b, s); err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	expected := "TRACK PARAMETERS\n> volume\n  pan\n  mute\nvalue: +0.00 dB [+0.00 dB]\n"
	if b.String() != expected {
		t.Fatalf("got %q, expected %q", b.String(), expected)
	}
	s.SetFilter("nothing")
	b.Reset()
	r.Session(&b, s)
	if expected := "TRACK PARAMETERS\n(no parameters)\n"; b.String() != expected {
		t.Fatalf("got %q, expected %q", b.String(), expected)
	}
}

func TestMenu(t *testing.T) {
	r, err := report.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	sim := hostsim.MustParse(`
tracks:
  - fx:
      - name: "VST: ReaEQ (Cockos)"
      - name: "Container"
        children:
          - name: "JS: Gate (Cockos)"
      - name: "VST: ReaDelay (Cockos)"
`)
	env := reaccess.Env{Host: sim}
	it, err := fxchain.NewTrackIterator(env, sim.Track(0))
	if err != nil {
		t.Fatalf("NewTrackIterator failed: %v", err)
	}
	m := fxchain.BuildMenu(env, it)
	var b strings.Builder
	if err := r.Menu(&b, m); err != nil {
		t.Fatalf("Menu failed: %v", err)
	}
	expected := "[1] 1 ReaEQ\n2 Container:\n  [2] (Container Parameters)\n  [3] 1 Gate (Cockos)\n[4] 3 ReaDelay\n"
	if b.String() != expected {
		t.Fatalf("got %q, expected %q", b.String(), expected)
	}
	lines := report.MenuLines(m)
	for _, c := range []struct {
		num, fx int
		ok      bool
	}{{1, 0, true}, {2, 1, true}, {4, 2, true}, {5, 0, false}, {0, 0, false}} {
		if fx, ok := report.Pick(lines, c.num); fx != c.fx || ok != c.ok {
			t.Errorf("pick %v: got %#x %v", c.num, fx, ok)
		}
	}
}
