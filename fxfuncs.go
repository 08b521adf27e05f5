package reaccess

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// FxFuncs is the FX function set for one kind of object. Tracks and takes
	// expose the same functions under different prefixes ("TrackFX_*" and
	// "TakeFX_*"); obj is the track or take the functions operate on.
	FxFuncs struct {
		Prefix Prefix

		GetCount              func(obj Handle) int
		GetRecCount           func(obj Handle) int // TrackFX only
		GetFXName             func(obj Handle, fx int) (string, bool)
		GetEnabled            func(obj Handle, fx int) bool
		GetNumParams          func(obj Handle, fx int) int
		GetParamName          func(obj Handle, fx, param int) (string, bool)
		GetParam              func(obj Handle, fx, param int) (value, min, max float64)
		GetParameterStepSizes func(obj Handle, fx, param int) (step, smallStep, largeStep float64, isToggle, ok bool)
		SetParam              func(obj Handle, fx, param int, value float64) bool
		FormatParamValue      func(obj Handle, fx, param int, value float64) (string, bool)
		GetNamedConfigParm    func(obj Handle, fx int, name string) (string, bool)
		SetNamedConfigParm    func(obj Handle, fx int, name, value string) bool
	}

	Prefix string
)

const (
	TrackFX Prefix = "TrackFX"
	TakeFX  Prefix = "TakeFX"
)

// ErrMissingFunc is returned when the host does not provide a function that
// an FX source needs.
var ErrMissingFunc = errors.New("host function unavailable")

// ResolveFx looks up the complete FX function set for prefix. It fails if any
// function is missing; callers must not build a source from a partial set.
func ResolveFx(r Resolver, prefix Prefix) (*FxFuncs, error) {
	fn := &FxFuncs{Prefix: prefix}
	var missing []string
	p := string(prefix) + "_"
	bind(r, p+"GetCount", &fn.GetCount, &missing)
	if prefix == TrackFX {
		bind(r, p+"GetRecCount", &fn.GetRecCount, &missing)
	}
	bind(r, p+"GetFXName", &fn.GetFXName, &missing)
	bind(r, p+"GetEnabled", &fn.GetEnabled, &missing)
	bind(r, p+"GetNumParams", &fn.GetNumParams, &missing)
	bind(r, p+"GetParamName", &fn.GetParamName, &missing)
	bind(r, p+"GetParam", &fn.GetParam, &missing)
	bind(r, p+"GetParameterStepSizes", &fn.GetParameterStepSizes, &missing)
	bind(r, p+"SetParam", &fn.SetParam, &missing)
	bind(r, p+"FormatParamValue", &fn.FormatParamValue, &missing)
	bind(r, p+"GetNamedConfigParm", &fn.GetNamedConfigParm, &missing)
	bind(r, p+"SetNamedConfigParm", &fn.SetNamedConfigParm, &missing)
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingFunc, strings.Join(missing, ", "))
	}
	return fn, nil
}

func bind[F any](r Resolver, name string, dst *F, missing *[]string) {
	if f, ok := r.Lookup(name).(F); ok {
		*dst = f
		return
	}
	*missing = append(*missing, name)
}

// NamedConfigInt reads a named config value as an integer, the way the host
// reports counts. Missing or malformed values read as 0.
func (fn *FxFuncs) NamedConfigInt(obj Handle, fx int, name string) int {
	s, ok := fn.GetNamedConfigParm(obj, fx, name)
	if !ok {
		return 0
	}
	return int(Atof(s))
}
