package fxchain

import (
	"strconv"
	"time"

	"github.com/reaccess/reaccess"
	"github.com/reaccess/reaccess/narrate"
)

// DefaultBypassDelay gives the host time to update its focus and the user
// time to read the effect name before the state is reported.
const DefaultBypassDelay = time.Second

// BypassReport returns the messages describing whether the focused effect
// is active. With aboutToToggle, the state after the pending toggle is
// described instead. Effects inside containers also get their offset from
// ContainerBase.
func BypassReport(env reaccess.Env, aboutToToggle bool) ([]string, bool) {
	f, ok := reaccess.FocusedFX(env.Host)
	if !ok {
		return nil, false
	}
	obj, prefix := f.Obj()
	fn, err := reaccess.ResolveFx(env.Host, prefix)
	if err != nil {
		return nil, false
	}
	enabled := fn.GetEnabled(obj, f.FX)
	if aboutToToggle {
		enabled = !enabled
	}
	msg := []string{env.T("bypassed")}
	if enabled {
		msg[0] = env.T("active")
	}
	if f.FX >= reaccess.ContainerBase {
		msg = append(msg, strconv.Itoa(f.FX-reaccess.ContainerBase))
	}
	return msg, true
}

// BypassReporter announces the bypass state of the focused effect.
type BypassReporter struct {
	Env       reaccess.Env
	Announcer narrate.Announcer
	// Delay for Focused. Zero means DefaultBypassDelay.
	Delay time.Duration

	delayed narrate.Delayed
}

func NewBypassReporter(env reaccess.Env, a narrate.Announcer, clock narrate.Clock) *BypassReporter {
	r := &BypassReporter{Env: env, Announcer: a}
	r.delayed.Clock = clock
	return r
}

// Report announces the state now and reports whether there was an effect to
// report on.
func (r *BypassReporter) Report(aboutToToggle bool) bool {
	msgs, ok := BypassReport(r.Env, aboutToToggle)
	for _, m := range msgs {
		r.Announcer.Announce(m, false)
	}
	return ok
}

// Focused schedules a report for a newly focused effect, replacing any
// report still pending.
func (r *BypassReporter) Focused() {
	d := r.Delay
	if d <= 0 {
		d = DefaultBypassDelay
	}
	r.delayed.Replace(d, func() { r.Report(false) })
}

func (r *BypassReporter) Cancel() { r.delayed.Cancel() }
