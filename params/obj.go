package params

import (
	"strings"

	"github.com/reaccess/reaccess"
)

type (
	// Toggle is an on/off attribute such as mute.
	Toggle struct {
		env  reaccess.Env
		attr Accessor
	}

	// Volume is a linear gain attribute shown in dB. Take volumes store a
	// negative value when the polarity is flipped; the sign is hidden from
	// the user and preserved on writes.
	Volume struct {
		env      reaccess.Env
		attr     Accessor
		flipSign bool
	}

	Pan struct {
		env  reaccess.Env
		attr Accessor
	}

	// Length is a duration in seconds, such as a fade length.
	Length struct {
		env      reaccess.Env
		attr     Accessor
		lastText string
	}

	// MakeFunc creates a Param bound to an attribute.
	MakeFunc func(env reaccess.Env, attr Accessor) Param
)

var (
	MakeToggle MakeFunc = func(env reaccess.Env, a Accessor) Param { return NewToggle(env, a) }
	MakeVolume MakeFunc = func(env reaccess.Env, a Accessor) Param { return NewVolume(env, a) }
	MakePan    MakeFunc = func(env reaccess.Env, a Accessor) Param { return NewPan(env, a) }
	MakeLength MakeFunc = func(env reaccess.Env, a Accessor) Param { return NewLength(env, a) }
)

// Toggle

func NewToggle(env reaccess.Env, attr Accessor) *Toggle { return &Toggle{env: env, attr: attr} }

func (p *Toggle) Kind() Kind     { return ToggleKind }
func (p *Toggle) Bounds() Bounds { return Bounds{Min: 0, Max: 1, Step: 1, LargeStep: 1} }
func (p *Toggle) Value() float64 {
	if getBool(p.attr) {
		return 1
	}
	return 0
}
func (p *Toggle) SetValue(v float64) { p.attr.GetSet(v != 0) }

func (p *Toggle) ValueText(v float64) string {
	if v != 0 {
		return p.env.T("on")
	}
	return p.env.T("off")
}

// Volume

func NewVolume(env reaccess.Env, attr Accessor) *Volume {
	p := &Volume{env: env, attr: attr}
	p.flipSign = getFloat(attr) < 0
	return p
}

func (p *Volume) Kind() Kind     { return VolumeKind }
func (p *Volume) Bounds() Bounds { return Bounds{Min: 0, Max: 4, Step: 0.002, LargeStep: 0.1} }

func (p *Volume) Value() float64 {
	if p.flipSign {
		return -getFloat(p.attr)
	}
	return getFloat(p.attr)
}

func (p *Volume) SetValue(v float64) {
	if p.flipSign {
		v = -v
	}
	p.attr.GetSet(v)
}

func (p *Volume) ValueText(v float64) string { return p.env.Host.MkVolStr(v) }
func (p *Volume) EditText() string           { return p.ValueText(p.Value()) }

// SetFromEdited accepts a dB figure; anything starting with "-inf" silences.
func (p *Volume) SetFromEdited(text string) {
	if strings.HasPrefix(text, "-inf") {
		p.SetValue(0)
		return
	}
	p.SetValue(reaccess.DB2Val(reaccess.Atof(text)))
}

// Pan

func NewPan(env reaccess.Env, attr Accessor) *Pan { return &Pan{env: env, attr: attr} }

func (p *Pan) Kind() Kind                 { return PanKind }
func (p *Pan) Bounds() Bounds             { return Bounds{Min: -1, Max: 1, Step: 0.01, LargeStep: 0.1} }
func (p *Pan) Value() float64             { return getFloat(p.attr) }
func (p *Pan) SetValue(v float64)         { p.attr.GetSet(v) }
func (p *Pan) ValueText(v float64) string { return p.env.Host.MkPanStr(v) }
func (p *Pan) EditText() string           { return p.ValueText(p.Value()) }
func (p *Pan) SetFromEdited(text string)  { p.SetValue(p.env.Host.ParsePanStr(text)) }

// Length

// NewLength resets the host's time text cache so the first text rendered for
// the new Param is never suppressed.
func NewLength(env reaccess.Env, attr Accessor) *Length {
	env.Host.ResetTimeCache()
	return &Length{env: env, attr: attr}
}

func (p *Length) Kind() Kind         { return LengthKind }
func (p *Length) Bounds() Bounds     { return Bounds{Min: 0, Max: 500, Step: 0.02, LargeStep: 10} }
func (p *Length) Value() float64     { return getFloat(p.attr) }
func (p *Length) SetValue(v float64) { p.attr.GetSet(v) }

// ValueText returns the previous text verbatim when the host reports that v
// reads the same as the last value it formatted.
func (p *Length) ValueText(v float64) string {
	text := p.env.Host.FormatTime(v, reaccess.TimeFormatRuler, true)
	if text == "" {
		return p.lastText
	}
	p.lastText = text
	return text
}

func (p *Length) EditText() string { return p.env.Host.FormatTimeStrPos(p.Value(), -1) }

func (p *Length) SetFromEdited(text string) { p.SetValue(p.env.Host.ParseTimeStrPos(text, -1)) }
