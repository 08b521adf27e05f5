// Package params models the controllable values of tracks, sends, items,
// takes and effects as one Param interface, and groups them into Sources a
// user interface can drive without knowing what is behind them.
package params

import "fmt"

type (
	// Param is a single controllable value. Bounds are fixed when the Param
	// is created; Value reads the host every time.
	Param interface {
		Kind() Kind
		Bounds() Bounds
		Value() float64
		// ValueText returns the display text for v, which need not be the
		// current value. An empty result means the Param has no text for v.
		ValueText(v float64) string
		SetValue(v float64)
	}

	// Editable is implemented by Params that accept typed text. The text
	// returned by EditText is accepted by SetFromEdited.
	Editable interface {
		Param
		EditText() string
		SetFromEdited(text string)
	}

	Bounds struct {
		Min, Max, Step, LargeStep float64
	}

	Kind int

	// Source is an ordered, indexable list of parameters.
	Source interface {
		Title() string
		Count() int
		Name(i int) string
		// Param materializes parameter i. It may have side effects on the
		// host, so callers create one only for the parameter in use.
		Param(i int) Param
	}
)

const (
	ToggleKind Kind = iota
	VolumeKind
	PanKind
	LengthKind
	FxKind
	NamedConfigKind
)

func (k Kind) String() string {
	switch k {
	case ToggleKind:
		return "toggle"
	case VolumeKind:
		return "volume"
	case PanKind:
		return "pan"
	case LengthKind:
		return "length"
	case FxKind:
		return "fx"
	case NamedConfigKind:
		return "named config"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (b Bounds) Clamp(v float64) float64 { return max(min(v, b.Max), b.Min) }

func (b Bounds) Contains(v float64) bool { return b.Min <= v && v <= b.Max }

// Percent renders v as a percentage of the range, for Params without text.
func (b Bounds) Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", (v-b.Min)/(b.Max-b.Min)*100)
}

// IsEditable reports whether p accepts typed text.
func IsEditable(p Param) bool {
	_, ok := p.(Editable)
	return ok
}
