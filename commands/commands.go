// Package commands binds the parameter sources, the effect menu and the
// session manager into the actions a user runs.
package commands

import (
	"errors"

	"github.com/reaccess/reaccess"
	"github.com/reaccess/reaccess/fxchain"
	"github.com/reaccess/reaccess/narrate"
	"github.com/reaccess/reaccess/params"
	"github.com/reaccess/reaccess/session"
)

type (
	Commands struct {
		Env       reaccess.Env
		Manager   *session.Manager
		Announcer narrate.Announcer
		// Chooser picks an effect when the menu has more than one. Nil
		// cancels.
		Chooser fxchain.Chooser
		Bypass  *fxchain.BypassReporter
		// Errors receives failures such as missing host functions. Nil
		// drops them.
		Errors func(error)
	}

	paramsFocus struct {
		c    *Commands
		kind params.FocusKind
	}

	fxParamsFocus struct {
		c    *Commands
		kind params.FocusKind
	}

	fxParamsMaster Commands

	reportBypass struct {
		c             *Commands
		aboutToToggle bool
	}
)

// ParamsFocus opens the parameters of the focused effect, or else of the
// last touched track or first selected item.
func (c *Commands) ParamsFocus(kind params.FocusKind) Action {
	return MakeAction(paramsFocus{c, kind})
}

func (a paramsFocus) Do() {
	src, err := params.ForFocus(a.c.Env, a.kind)
	if errors.Is(err, params.ErrNoSource) {
		return
	}
	if err != nil {
		a.c.fail(err)
		return
	}
	a.c.open(src)
}

// FxParamsFocus chooses an effect of the last touched track or the active
// take of the first selected item and opens its parameters.
func (c *Commands) FxParamsFocus(kind params.FocusKind) Action {
	return MakeAction(fxParamsFocus{c, kind})
}

func (a fxParamsFocus) Enabled() bool { return a.kind != params.FocusNone }

func (a fxParamsFocus) Do() {
	h := a.c.Env.Host
	switch a.kind {
	case params.FocusTrack:
		if track := h.LastTouchedTrack(); track != reaccess.Nil {
			a.c.fxParams(track, reaccess.TrackFX)
		}
	case params.FocusItem:
		item := h.SelectedMediaItem(0)
		if item == reaccess.Nil {
			return
		}
		if take := h.ActiveTake(item); take != reaccess.Nil {
			a.c.fxParams(take, reaccess.TakeFX)
		}
	}
}

// FxParamsMaster chooses an effect of the master track, monitoring effects
// included, and opens its parameters.
func (c *Commands) FxParamsMaster() Action { return MakeAction((*fxParamsMaster)(c)) }
func (c *fxParamsMaster) Do() {
	(*Commands)(c).fxParams(c.Env.Host.MasterTrack(), reaccess.TrackFX)
}

// ReportBypass reports whether the focused effect is active, or will be
// once a pending toggle happens.
func (c *Commands) ReportBypass(aboutToToggle bool) Action {
	return MakeAction(reportBypass{c, aboutToToggle})
}

func (a reportBypass) Enabled() bool { return a.c.Bypass != nil }
func (a reportBypass) Do()           { a.c.Bypass.Report(a.aboutToToggle) }

func (c *Commands) fxParams(obj reaccess.Handle, prefix reaccess.Prefix) {
	var it *fxchain.Iterator
	var err error
	if prefix == reaccess.TakeFX {
		it, err = fxchain.NewTakeIterator(c.Env, obj)
	} else {
		it, err = fxchain.NewTrackIterator(c.Env, obj)
	}
	if err != nil {
		c.fail(err)
		return
	}
	fx, ok, err := fxchain.BuildMenu(c.Env, it).Choose(c.chooser())
	if errors.Is(err, fxchain.ErrNoFX) {
		c.announce(c.Env.T("no FX"))
		return
	}
	if !ok {
		return
	}
	src, err := params.NewFxParams(c.Env, obj, prefix, fx)
	if err != nil {
		c.fail(err)
		return
	}
	c.open(src)
}

func (c *Commands) open(src params.Source) {
	if c.Manager == nil {
		return
	}
	if _, err := c.Manager.Open(src); err != nil && !errors.Is(err, session.ErrEmptySource) {
		c.fail(err)
	}
}

func (c *Commands) chooser() fxchain.Chooser {
	if c.Chooser == nil {
		return cancel{}
	}
	return c.Chooser
}

type cancel struct{}

func (cancel) Choose(fxchain.Menu) (int, bool) { return 0, false }

func (c *Commands) announce(msg string) {
	if c.Announcer != nil {
		c.Announcer.Announce(msg, true)
	}
}

func (c *Commands) fail(err error) {
	if c.Errors != nil {
		c.Errors(err)
	}
}
