package hostsim

import (
	"fmt"
	"strconv"

	"github.com/reaccess/reaccess"
)

func (s *Sim) registerFuncs() {
	s.funcs = map[string]any{}
	for _, prefix := range []reaccess.Prefix{reaccess.TrackFX, reaccess.TakeFX} {
		p := string(prefix) + "_"
		c := fxCalls{s: s, prefix: prefix}
		s.funcs[p+"GetCount"] = c.getCount
		if prefix == reaccess.TrackFX {
			s.funcs[p+"GetRecCount"] = c.getRecCount
		}
		s.funcs[p+"GetFXName"] = c.getFXName
		s.funcs[p+"GetEnabled"] = c.getEnabled
		s.funcs[p+"GetNumParams"] = c.getNumParams
		s.funcs[p+"GetParamName"] = c.getParamName
		s.funcs[p+"GetParam"] = c.getParam
		s.funcs[p+"GetParameterStepSizes"] = c.getParameterStepSizes
		s.funcs[p+"SetParam"] = c.setParam
		s.funcs[p+"FormatParamValue"] = c.formatParamValue
		s.funcs[p+"GetNamedConfigParm"] = c.getNamedConfigParm
		s.funcs[p+"SetNamedConfigParm"] = c.setNamedConfigParm
	}
	if s.p.LegacyFocus {
		s.funcs[reaccess.FuncFocusedFX2] = reaccess.FocusedFX2Func(s.focusedFX2)
	} else {
		s.funcs[reaccess.FuncTouchedOrFocusedFX] = reaccess.TouchedOrFocusedFXFunc(s.touchedOrFocusedFX)
	}
}

// fxCalls implements the FX functions of one prefix.
type fxCalls struct {
	s      *Sim
	prefix reaccess.Prefix
}

func (c fxCalls) chains(obj reaccess.Handle) (main, rec []FX) {
	if c.prefix == reaccess.TakeFX {
		if tk := c.s.takes[obj]; tk != nil {
			return tk.FX, nil
		}
		return nil, nil
	}
	if t := c.s.track(obj); t != nil {
		return t.FX, t.RecFX
	}
	return nil, nil
}

// Index maps every effect reachable from obj by its FX index.
func (c fxCalls) index(obj reaccess.Handle) map[int]*FX {
	m := map[int]*FX{}
	main, rec := c.chains(obj)
	indexChain(main, 0, m)
	indexChain(rec, reaccess.RecBase, m)
	return m
}

func indexChain(chain []FX, rec int, m map[int]*FX) {
	for i := range chain {
		fx := &chain[i]
		m[rec+i] = fx
		if fx.isContainer() {
			indexContained(fx.Children, reaccess.TopContainerIndex(i), len(chain)+1, rec, m)
		}
	}
}

func indexContained(chain []FX, container, multiplier, rec int, m map[int]*FX) {
	for i := range chain {
		fx := &chain[i]
		idx := reaccess.ContainedIndex(i, multiplier, container)
		m[rec+idx] = fx
		if fx.isContainer() {
			indexContained(fx.Children, idx, multiplier*(len(chain)+1), rec, m)
		}
	}
}

func (c fxCalls) fx(obj reaccess.Handle, fx int) *FX {
	return c.index(obj)[fx]
}

func (c fxCalls) param(obj reaccess.Handle, fx, param int) *Param {
	f := c.fx(obj, fx)
	if f == nil || param < 0 || param >= len(f.Params) {
		return nil
	}
	return &f.Params[param]
}

func (c fxCalls) getCount(obj reaccess.Handle) int {
	main, _ := c.chains(obj)
	return len(main)
}

func (c fxCalls) getRecCount(obj reaccess.Handle) int {
	_, rec := c.chains(obj)
	return len(rec)
}

func (c fxCalls) getFXName(obj reaccess.Handle, fx int) (string, bool) {
	if f := c.fx(obj, fx); f != nil {
		return f.Name, true
	}
	return "", false
}

func (c fxCalls) getEnabled(obj reaccess.Handle, fx int) bool {
	f := c.fx(obj, fx)
	return f != nil && !f.Bypassed
}

func (c fxCalls) getNumParams(obj reaccess.Handle, fx int) int {
	if f := c.fx(obj, fx); f != nil {
		return len(f.Params)
	}
	return 0
}

func (c fxCalls) getParamName(obj reaccess.Handle, fx, param int) (string, bool) {
	if p := c.param(obj, fx, param); p != nil {
		return p.Name, true
	}
	return "", false
}

func (c fxCalls) getParam(obj reaccess.Handle, fx, param int) (value, min, max float64) {
	if p := c.param(obj, fx, param); p != nil {
		return p.Value, p.Min, p.Max
	}
	return 0, 0, 0
}

func (c fxCalls) getParameterStepSizes(obj reaccess.Handle, fx, param int) (step, smallStep, largeStep float64, isToggle, ok bool) {
	p := c.param(obj, fx, param)
	if p == nil || (p.Step == 0 && p.LargeStep == 0) {
		return 0, 0, 0, false, false
	}
	return p.Step, 0, p.LargeStep, p.Min == 0 && p.Max == 1 && p.Step == 1, true
}

func (c fxCalls) setParam(obj reaccess.Handle, fx, param int, value float64) bool {
	p := c.param(obj, fx, param)
	if p == nil {
		return false
	}
	p.Value = value
	return true
}

func (c fxCalls) formatParamValue(obj reaccess.Handle, fx, param int, value float64) (string, bool) {
	p := c.param(obj, fx, param)
	if p == nil || p.Format == "" {
		return "", false
	}
	return fmt.Sprintf(p.Format, value), true
}

func (c fxCalls) getNamedConfigParm(obj reaccess.Handle, fx int, name string) (string, bool) {
	f := c.fx(obj, fx)
	if f == nil {
		return "", false
	}
	if name == "container_count" {
		if !f.isContainer() {
			return "", false
		}
		return strconv.Itoa(len(f.Children)), true
	}
	v, ok := f.Config[name]
	return v, ok
}

func (c fxCalls) setNamedConfigParm(obj reaccess.Handle, fx int, name, value string) bool {
	f := c.fx(obj, fx)
	if f == nil {
		return false
	}
	if f.Config == nil {
		f.Config = map[string]string{}
	}
	f.Config[name] = value
	c.s.Touched = append(c.s.Touched, fmt.Sprintf("%d %s=%s", fx, name, value))
	return true
}

func (s *Sim) touchedOrFocusedFX(mode int) (trackIdx, itemIdx, takeIdx, fx, flags int, ok bool) {
	f := s.p.Focus
	if f == nil {
		return 0, 0, 0, 0, 0, false
	}
	if f.Unfocused {
		flags |= 1
	}
	takeIdx = -1
	if f.Take != nil {
		takeIdx = *f.Take
	}
	return f.Track, f.Item, takeIdx, f.FX, flags, true
}

func (s *Sim) focusedFX2() (kind, trackNum, itemIdx, fx int) {
	f := s.p.Focus
	if f == nil {
		return 0, 0, 0, 0
	}
	kind, fx = 1, f.FX
	if f.Take != nil {
		kind, fx = 2, *f.Take<<16|f.FX
	}
	if f.Unfocused {
		kind |= 4
	}
	return kind, f.Track + 1, f.Item, fx
}
