package params

import (
	"errors"

	"github.com/reaccess/reaccess"
)

// FocusKind is the kind of object the user last navigated to, used when no
// effect has focus.
type FocusKind int

const (
	FocusNone FocusKind = iota
	FocusTrack
	FocusItem
)

// ErrNoSource is returned when there is nothing to show parameters for.
var ErrNoSource = errors.New("no parameters for the current focus")

// ForFocus returns the parameters of the focused effect if there is one,
// otherwise those of the last touched track or the first selected item,
// depending on kind.
func ForFocus(env reaccess.Env, kind FocusKind) (Source, error) {
	h := env.Host
	if f, ok := reaccess.FocusedFX(h); ok {
		obj, prefix := f.Obj()
		src, err := NewFxParams(env, obj, prefix, f.FX)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
	switch kind {
	case FocusTrack:
		track := h.LastTouchedTrack()
		if track == reaccess.Nil {
			return nil, ErrNoSource
		}
		src, err := TrackParams(env, track)
		if err != nil {
			return nil, err
		}
		return src, nil
	case FocusItem:
		item := h.SelectedMediaItem(0)
		if item == reaccess.Nil {
			return nil, ErrNoSource
		}
		return ItemParams(env, item), nil
	}
	return nil, ErrNoSource
}
