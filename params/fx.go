package params

import (
	"fmt"
	"strconv"

	"github.com/reaccess/reaccess"
)

type (
	// FxParams lists the parameters of one effect: named config parameters
	// synthesized for the plugin first, then the numbered ones.
	FxParams struct {
		env   reaccess.Env
		fn    *reaccess.FxFuncs
		obj   reaccess.Handle
		fx    int
		named []namedConfigSpec
	}

	// Fx is a numbered effect parameter. Bounds come from the host.
	Fx struct {
		src    *FxParams
		fx     int
		param  int
		bounds Bounds
	}

	// NamedConfig is an effect setting chosen from a closed list of host
	// strings, addressed by its position in the list.
	NamedConfig struct {
		src    *FxParams
		spec   namedConfigSpec
		bounds Bounds
	}

	// NamedValue pairs an untranslated label with the host string it stands
	// for.
	NamedValue struct {
		Label, Value string
	}

	namedConfigSpec struct {
		display string
		key     string
		values  []NamedValue
	}
)

// ReaEQName is the only plugin with synthesized named config parameters.
const ReaEQName = "VST: ReaEQ (Cockos)"

var (
	ToggleValues = []NamedValue{
		{"off", "0"},
		{"on", "1"},
	}
	ReaEQBandTypes = []NamedValue{
		{"low shelf", "0"},
		{"high shelf", "1"},
		{"band", "8"},
		{"low pass", "3"},
		{"high pass", "4"},
		{"all pass", "5"},
		{"notch", "6"},
		{"band pass", "7"},
		{"parallel band pass", "10"},
		{"band (alt)", "9"},
		{"band (alt 2)", "2"},
	}
)

// NewFxParams binds the FX functions of prefix for effect fx of obj. An fx
// below zero gives a source with no parameters of its own, usable only
// through ParamAt.
func NewFxParams(env reaccess.Env, obj reaccess.Handle, prefix reaccess.Prefix, fx int) (*FxParams, error) {
	fn, err := reaccess.ResolveFx(env.Host, prefix)
	if err != nil {
		return nil, fmt.Errorf("could not create FX parameters: %w", err)
	}
	p := &FxParams{env: env, fn: fn, obj: obj, fx: fx}
	if fx >= 0 {
		p.initNamedConfig()
	}
	return p, nil
}

// initNamedConfig probes BANDENABLED<band> until the host reports a band
// missing, capped at env.MaxBands.
func (p *FxParams) initNamedConfig() {
	name, _ := p.fn.GetFXName(p.obj, p.fx)
	if name != ReaEQName {
		return
	}
	for band := 0; band < p.env.MaxBands(); band++ {
		key := "BANDENABLED" + strconv.Itoa(band)
		if _, ok := p.fn.GetNamedConfigParm(p.obj, p.fx, key); !ok {
			break
		}
		p.named = append(p.named,
			namedConfigSpec{display: p.env.T("Band %d enable", band+1), key: key, values: ToggleValues},
			namedConfigSpec{display: p.env.T("Band %d type", band+1), key: "BANDTYPE" + strconv.Itoa(band), values: ReaEQBandTypes},
		)
	}
}

func (p *FxParams) Title() string { return p.env.T("FX Parameters") }

// NamedCount is the number of named config parameters preceding the numbered
// ones.
func (p *FxParams) NamedCount() int { return len(p.named) }

func (p *FxParams) Count() int {
	return len(p.named) + p.fn.GetNumParams(p.obj, p.fx)
}

// Name suffixes every name with the parameter's index so duplicates can be
// told apart.
func (p *FxParams) Name(i int) string {
	var name string
	if i < len(p.named) {
		name = p.named[i].display
	} else {
		name, _ = p.fn.GetParamName(p.obj, p.fx, i-len(p.named))
	}
	return fmt.Sprintf("%s (%d)", name, i)
}

func (p *FxParams) Param(i int) Param {
	if i < len(p.named) {
		return p.newNamedConfig(p.named[i])
	}
	return p.ParamAt(p.fx, i-len(p.named))
}

// ParamName and FxName return the host names for any effect of the object.
func (p *FxParams) ParamName(fx, param int) string {
	name, _ := p.fn.GetParamName(p.obj, fx, param)
	return name
}

func (p *FxParams) FxName(fx int) string {
	name, _ := p.fn.GetFXName(p.obj, fx)
	return name
}

// ParamAt creates numbered parameter param of any effect of the object and
// marks it as the host's last touched parameter.
func (p *FxParams) ParamAt(fx, param int) *Fx {
	ret := &Fx{src: p, fx: fx, param: param}
	_, lo, hi := p.fn.GetParam(p.obj, fx, param)
	ret.bounds = Bounds{Min: lo, Max: hi}
	step, _, large, _, ok := p.fn.GetParameterStepSizes(p.obj, fx, param)
	if !ok {
		step, large = 0, 0
	}
	if step != 0 {
		if large == 0 {
			large = step * float64(int((hi-lo)/50/step))
			if large == 0 {
				large = step
			}
		}
	} else {
		step = (hi - lo) / 1000
		large = step * 20
	}
	ret.bounds.Step, ret.bounds.LargeStep = step, large
	p.fn.SetNamedConfigParm(p.obj, fx, "last_touched", strconv.Itoa(param))
	p.fn.SetNamedConfigParm(p.obj, fx, "focused", "1")
	return ret
}

// Named config parameters cannot be the last touched parameter, so parameter
// 0 is marked instead.
func (p *FxParams) newNamedConfig(spec namedConfigSpec) *NamedConfig {
	p.fn.SetNamedConfigParm(p.obj, p.fx, "last_touched", "0")
	p.fn.SetNamedConfigParm(p.obj, p.fx, "focused", "1")
	return &NamedConfig{
		src:    p,
		spec:   spec,
		bounds: Bounds{Min: 0, Max: float64(len(spec.values) - 1), Step: 1, LargeStep: 1},
	}
}

// Fx

func (p *Fx) Kind() Kind     { return FxKind }
func (p *Fx) Bounds() Bounds { return p.bounds }

func (p *Fx) Value() float64 {
	v, _, _ := p.src.fn.GetParam(p.src.obj, p.fx, p.param)
	return v
}

func (p *Fx) SetValue(v float64) { p.src.fn.SetParam(p.src.obj, p.fx, p.param, v) }

func (p *Fx) ValueText(v float64) string {
	text, ok := p.src.fn.FormatParamValue(p.src.obj, p.fx, p.param, v)
	if !ok {
		return ""
	}
	return text
}

func (p *Fx) EditText() string          { return strconv.FormatFloat(p.Value(), 'f', 4, 64) }
func (p *Fx) SetFromEdited(text string) { p.SetValue(reaccess.Atof(text)) }

// NamedConfig

func (p *NamedConfig) Kind() Kind     { return NamedConfigKind }
func (p *NamedConfig) Bounds() Bounds { return p.bounds }

// Value is the position of the host's current string in the list, or 0 when
// the string is empty or unknown.
func (p *NamedConfig) Value() float64 {
	s, _ := p.src.fn.GetNamedConfigParm(p.src.obj, p.src.fx, p.spec.key)
	if s == "" {
		return 0
	}
	for i, v := range p.spec.values {
		if v.Value == s {
			return float64(i)
		}
	}
	return 0
}

func (p *NamedConfig) SetValue(v float64) {
	p.src.fn.SetNamedConfigParm(p.src.obj, p.src.fx, p.spec.key, p.spec.values[p.index(v)].Value)
}

func (p *NamedConfig) ValueText(v float64) string {
	return p.src.env.T(p.spec.values[p.index(v)].Label)
}

func (p *NamedConfig) index(v float64) int {
	return int(p.bounds.Clamp(v))
}
