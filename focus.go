package reaccess

// Focus identifies the effect the user is working with. Take is Nil for
// track effects.
type Focus struct {
	Track Handle
	Take  Handle
	FX    int
}

// Host functions FocusedFX looks up by name. The legacy one is only used when
// the newer one is unavailable.
const (
	FuncTouchedOrFocusedFX = "GetTouchedOrFocusedFX"
	FuncFocusedFX2         = "GetFocusedFX2"
)

type (
	// TouchedOrFocusedFXFunc reports indices rather than handles. trackIdx
	// is -1 for the master track, takeIdx is -1 for track FX. Bit 0 of flags
	// is set when the FX window is open but no longer focused.
	TouchedOrFocusedFXFunc = func(mode int) (trackIdx, itemIdx, takeIdx, fx, flags int, ok bool)

	// FocusedFX2Func returns 0 when nothing is focused, 1 for a track FX and
	// 2 for a take FX, with 4 or-ed in when the window lost focus. trackNum
	// is 1-based, 0 is the master track. For take FX the take index is in
	// the high word of fx.
	FocusedFX2Func = func() (kind, trackNum, itemIdx, fx int)
)

// FocusedFX returns the effect whose window has focus.
func FocusedFX(h Host) (Focus, bool) {
	var trackIdx, itemIdx, takeIdx, fx int
	if f, ok := h.Lookup(FuncTouchedOrFocusedFX).(TouchedOrFocusedFXFunc); ok {
		var flags int
		if trackIdx, itemIdx, takeIdx, fx, flags, ok = f(1); !ok {
			return Focus{}, false
		}
		if flags&1 != 0 {
			return Focus{}, false // open, but no longer focused
		}
	} else if f, ok := h.Lookup(FuncFocusedFX2).(FocusedFX2Func); ok {
		var kind, trackNum int
		kind, trackNum, itemIdx, fx = f()
		if kind == 0 || kind&4 != 0 {
			return Focus{}, false
		}
		trackIdx = trackNum - 1
		if kind == 2 {
			takeIdx = fx >> 16
			fx &= 0xffff
		} else {
			takeIdx = -1
		}
	} else {
		return Focus{}, false
	}
	var ret Focus
	ret.FX = fx
	if trackIdx == -1 {
		ret.Track = h.MasterTrack()
	} else {
		ret.Track = h.Track(trackIdx)
	}
	if ret.Track == Nil {
		return Focus{}, false
	}
	if takeIdx != -1 {
		item := h.TrackMediaItem(ret.Track, itemIdx)
		ret.Take = h.Take(item, takeIdx)
		if ret.Take == Nil {
			return Focus{}, false
		}
	}
	return ret, true
}

// Obj returns the object owning the focused effect and the prefix of the FX
// functions that operate on it.
func (f Focus) Obj() (Handle, Prefix) {
	if f.Take != Nil {
		return f.Take, TakeFX
	}
	return f.Track, TrackFX
}
