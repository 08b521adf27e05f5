package commands_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/reaccess/reaccess"
	"github.com/reaccess/reaccess/commands"
	"github.com/reaccess/reaccess/fxchain"
	"github.com/reaccess/reaccess/hostsim"
	"github.com/reaccess/reaccess/narrate"
	"github.com/reaccess/reaccess/params"
	"github.com/reaccess/reaccess/session"
)

const project = `
lastTouched: 0
selectedItems: [{track: 1, item: 0}]
master:
  fx:
    - name: "VST: ReaLimit (Cockos)"
      params: [{name: Threshold, max: 1, step: 0.01}]
tracks:
  - name: Lead
    fx:
      - name: "VST: ReaComp (Cockos)"
        params: [{name: Ratio, max: 1, step: 0.01}]
      - name: "VST: ReaDelay (Cockos)"
        params: [{name: Length, max: 1, step: 0.01}, {name: Feedback, max: 1, step: 0.01}]
  - name: Drums
    items:
      - takes:
          - fx:
              - name: "VST: ReaPitch (Cockos)"
                params: [{name: Shift, max: 1, step: 0.01}]
  - name: Empty
`

type chooser struct {
	fx    int
	ok    bool
	menus []fxchain.Menu
}

func (c *chooser) Choose(m fxchain.Menu) (int, bool) {
	c.menus = append(c.menus, m)
	return c.fx, c.ok
}

type fixture struct {
	sim  *hostsim.Sim
	cmds *commands.Commands
	rec  *narrate.Recorder
	errs []error
}

func setup(t *testing.T, doc string, c fxchain.Chooser) *fixture {
	t.Helper()
	sim, err := hostsim.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	f := &fixture{sim: sim, rec: &narrate.Recorder{}}
	f.cmds = &commands.Commands{
		Env:       reaccess.Env{Host: sim},
		Manager:   &session.Manager{},
		Announcer: f.rec,
		Chooser:   c,
		Errors:    func(err error) { f.errs = append(f.errs, err) },
	}
	f.cmds.Manager.Announcer = f.rec
	return f
}

func (f *fixture) names(t *testing.T) []string {
	t.Helper()
	s := f.cmds.Manager.Active()
	if s == nil {
		t.Fatalf("no session opened")
	}
	return s.Names()
}

func TestFxParamsChooses(t *testing.T) {
	c := &chooser{fx: 1, ok: true}
	f := setup(t, project, c)
	f.cmds.FxParamsFocus(params.FocusTrack).Do()
	if len(c.menus) != 1 || c.menus[0].Count != 2 {
		t.Fatalf("menus: %+v", c.menus)
	}
	if expected := []string{"Length (0)", "Feedback (1)"}; !reflect.DeepEqual(f.names(t), expected) {
		t.Fatalf("got %v, expected %v", f.names(t), expected)
	}
	if f.cmds.Manager.Active().Title() != "FX Parameters" {
		t.Fatalf("title: %q", f.cmds.Manager.Active().Title())
	}
}

func TestFxParamsCancelled(t *testing.T) {
	for _, c := range []fxchain.Chooser{&chooser{}, nil} {
		f := setup(t, project, c)
		f.cmds.FxParamsFocus(params.FocusTrack).Do()
		if f.cmds.Manager.IsActive() {
			t.Fatalf("cancelled menu opened a session")
		}
	}
}

func TestFxParamsSingleEffect(t *testing.T) {
	c := &chooser{}
	f := setup(t, project, c)
	f.cmds.FxParamsMaster().Do()
	if expected := []string{"Threshold (0)"}; len(c.menus) != 0 || !reflect.DeepEqual(f.names(t), expected) {
		t.Fatalf("master: got %v, chooser called %v times", f.names(t), len(c.menus))
	}
	f.cmds.FxParamsFocus(params.FocusItem).Do()
	if expected := []string{"Shift (0)"}; !reflect.DeepEqual(f.names(t), expected) {
		t.Fatalf("take: got %v", f.names(t))
	}
}

func TestFxParamsNoFX(t *testing.T) {
	f := setup(t, project, &chooser{})
	empty := 2
	f.sim.Project().LastTouched = &empty
	f.cmds.FxParamsFocus(params.FocusTrack).Do()
	if f.cmds.Manager.IsActive() {
		t.Fatalf("session opened without effects")
	}
	if expected := []string{"no FX"}; !reflect.DeepEqual(f.rec.Messages, expected) {
		t.Fatalf("got %v, expected %v", f.rec.Messages, expected)
	}
}

func TestParamsFocus(t *testing.T) {
	f := setup(t, project, nil)
	f.cmds.ParamsFocus(params.FocusTrack).Do()
	if s := f.cmds.Manager.Active(); s == nil || s.Title() != "Track Parameters" {
		t.Fatalf("track: got %v", s)
	}
	f.cmds.ParamsFocus(params.FocusItem).Do()
	if s := f.cmds.Manager.Active(); s == nil || s.Title() != "Item Parameters" {
		t.Fatalf("item: got %v", s)
	}
	take := 0
	f.sim.Project().Focus = &hostsim.Focus{Track: 1, Item: 0, Take: &take, FX: 0}
	f.cmds.ParamsFocus(params.FocusTrack).Do()
	if expected := []string{"Shift (0)"}; !reflect.DeepEqual(f.names(t), expected) {
		t.Fatalf("focused effect: got %v", f.names(t))
	}
	if len(f.errs) != 0 {
		t.Fatalf("errors: %v", f.errs)
	}
}

func TestNothingToOpen(t *testing.T) {
	f := setup(t, `tracks: [{name: A}]`, nil)
	f.cmds.ParamsFocus(params.FocusTrack).Do()
	f.cmds.FxParamsFocus(params.FocusItem).Do()
	if f.cmds.Manager.IsActive() || len(f.errs) != 0 || len(f.rec.Messages) != 0 {
		t.Fatalf("active %v, errors %v, messages %v", f.cmds.Manager.IsActive(), f.errs, f.rec.Messages)
	}
	if f.cmds.FxParamsFocus(params.FocusNone).Enabled() {
		t.Fatalf("no focus kind should disable the command")
	}
	if f.cmds.ReportBypass(false).Enabled() {
		t.Fatalf("bypass report enabled without a reporter")
	}
}

func TestMissingFunctionReported(t *testing.T) {
	f := setup(t, project+`missing: [TrackFX_GetRecCount]
`, nil)
	f.cmds.FxParamsMaster().Do()
	if len(f.errs) != 1 || !errors.Is(f.errs[0], reaccess.ErrMissingFunc) {
		t.Fatalf("got %v, expected ErrMissingFunc", f.errs)
	}
}

func TestReportBypass(t *testing.T) {
	f := setup(t, project+`focus: {track: 0, fx: 1}
`, nil)
	var clock narrate.ManualClock
	f.cmds.Bypass = fxchain.NewBypassReporter(f.cmds.Env, f.rec, &clock)
	f.cmds.ReportBypass(true).Do()
	if expected := []string{"bypassed"}; !reflect.DeepEqual(f.rec.Messages, expected) {
		t.Fatalf("got %v, expected %v", f.rec.Messages, expected)
	}
}

func TestZeroAction(t *testing.T) {
	var a commands.Action
	if a.Enabled() {
		t.Fatalf("zero action enabled")
	}
	a.Do()
	ran := false
	commands.MakeAction(commands.DoFunc(func() { ran = true })).Do()
	if !ran {
		t.Fatalf("DoFunc did not run")
	}
}
