// Package session drives a parameter Source the way the parameters dialog
// does, without any windows: a filtered list of parameter names, one
// selected parameter and its value, adjusted in steps or by typed text.
package session

import (
	"errors"
	"regexp"
	"strings"

	"github.com/reaccess/reaccess/narrate"
	"github.com/reaccess/reaccess/params"
)

type (
	Options struct {
		// ShowUnnamed includes parameters whose names carry no information,
		// such as "P001 (12)".
		ShowUnnamed bool
		Filter      string
	}

	Session struct {
		src       params.Source
		announcer narrate.Announcer
		count     int

		showUnnamed bool
		filter      string
		visible     []int
		sel         int

		paramNum int
		param    params.Param
		val      float64
		valText  string
		suppress bool
	}
)

// ErrEmptySource is returned by Open for a source without parameters.
var ErrEmptySource = errors.New("no parameters")

var unnamedRe = regexp.MustCompile(`^(?:|-|[P#]\d{3}) \(\d+\)$`)

// Open selects the first visible parameter of src and announces its value.
func Open(src params.Source, a narrate.Announcer, opts Options) (*Session, error) {
	s := &Session{
		src:         src,
		announcer:   a,
		count:       src.Count(),
		showUnnamed: opts.ShowUnnamed,
		filter:      strings.ToLower(opts.Filter),
	}
	if s.count == 0 {
		return nil, ErrEmptySource
	}
	s.updateList()
	return s, nil
}

func (s *Session) Title() string { return s.src.Title() }

// Names returns the names of the visible parameters.
func (s *Session) Names() []string {
	ret := make([]string, len(s.visible))
	for i, p := range s.visible {
		ret[i] = s.src.Name(p)
	}
	return ret
}

// Selected is the position of the selected parameter among the visible
// ones, or -1 when none is visible.
func (s *Session) Selected() int {
	if len(s.visible) == 0 {
		return -1
	}
	return s.sel
}

// ParamIndex is the selected parameter's index in the source.
func (s *Session) ParamIndex() int     { return s.paramNum }
func (s *Session) Param() params.Param { return s.param }
func (s *Session) Value() float64      { return s.val }
func (s *Session) ValueText() string   { return s.valText }

// EditText returns the text to show for editing, if the parameter is
// editable.
func (s *Session) EditText() (string, bool) {
	e, ok := s.param.(params.Editable)
	if !ok {
		return "", false
	}
	return e.EditText(), true
}

// SetFilter shows only parameters whose names contain text, ignoring case.
func (s *Session) SetFilter(text string) {
	text = strings.ToLower(text)
	if text == s.filter {
		return
	}
	s.filter = text
	s.updateList()
}

func (s *Session) SetShowUnnamed(show bool) {
	if show == s.showUnnamed {
		return
	}
	s.showUnnamed = show
	s.updateList()
}

// Select makes the i-th visible parameter current.
func (s *Session) Select(i int) bool {
	if i < 0 || i >= len(s.visible) {
		return false
	}
	s.sel = i
	s.paramChanged()
	return true
}

// Cycle selects the next visible parameter, or the previous one when
// backward, wrapping around. The name and value are announced together.
func (s *Session) Cycle(backward bool) bool {
	n := len(s.visible)
	if n == 0 {
		return false
	}
	next := s.sel + 1
	if backward {
		next = s.sel - 1
	}
	next = (next + n) % n
	s.suppress = true
	s.Select(next)
	s.suppress = false
	s.announce(s.src.Name(s.paramNum) + ", " + s.valText)
	return true
}

// Slide moves the value towards newVal. When newVal reads the same as the
// current value, it keeps moving in steps until the text changes, so every
// accepted move is audible.
func (s *Session) Slide(newVal float64) bool {
	if s.param == nil {
		return false
	}
	b := s.param.Bounds()
	if newVal == s.val || !b.Contains(newVal) {
		return false
	}
	step := b.Step
	if newVal < s.val {
		step = -step
	}
	s.val = newVal
	// multiply rather than accumulate so rounding errors do not add up
	for steps := 1; step != 0 && b.Contains(newVal); steps++ {
		text := s.param.ValueText(newVal)
		if text == "" {
			break
		}
		if text != s.valText {
			s.val = newVal
			break
		}
		newVal = s.val + step*float64(steps)
	}
	s.param.SetValue(s.val)
	s.updateValue()
	return true
}

func (s *Session) StepUp() bool   { return s.move(func(b params.Bounds) float64 { return s.val + b.Step }) }
func (s *Session) StepDown() bool { return s.move(func(b params.Bounds) float64 { return s.val - b.Step }) }
func (s *Session) PageUp() bool   { return s.move(func(b params.Bounds) float64 { return s.val + b.LargeStep }) }
func (s *Session) PageDown() bool { return s.move(func(b params.Bounds) float64 { return s.val - b.LargeStep }) }
func (s *Session) ToMax() bool    { return s.move(func(b params.Bounds) float64 { return b.Max }) }
func (s *Session) ToMin() bool    { return s.move(func(b params.Bounds) float64 { return b.Min }) }

func (s *Session) move(to func(params.Bounds) float64) bool {
	if s.param == nil {
		return false
	}
	return s.Slide(to(s.param.Bounds()))
}

// Edit applies typed text. Text equal to the current edit text, or empty
// text, changes nothing.
func (s *Session) Edit(text string) bool {
	e, ok := s.param.(params.Editable)
	if !ok || text == "" || text == e.EditText() {
		return false
	}
	e.SetFromEdited(text)
	s.val = s.param.Value()
	s.updateValue()
	return true
}

func (s *Session) include(name string) bool {
	if !s.showUnnamed && unnamedRe.MatchString(name) {
		return false
	}
	return s.filter == "" || strings.Contains(strings.ToLower(name), s.filter)
}

// updateList keeps the selected parameter if it is still visible.
func (s *Session) updateList() {
	prev := -1
	if len(s.visible) > 0 {
		prev = s.visible[s.sel]
	}
	s.visible = s.visible[:0]
	s.sel = 0
	for p := range s.count {
		if !s.include(s.src.Name(p)) {
			continue
		}
		s.visible = append(s.visible, p)
		if p == prev {
			s.sel = len(s.visible) - 1
		}
	}
	if len(s.visible) == 0 {
		s.param = nil
		return
	}
	s.paramChanged()
}

func (s *Session) paramChanged() {
	s.paramNum = s.visible[s.sel]
	s.param = s.src.Param(s.paramNum)
	s.val = s.param.Value()
	s.updateValue()
}

func (s *Session) updateValue() {
	s.valText = s.param.ValueText(s.val)
	if s.valText == "" {
		s.valText = s.param.Bounds().Percent(s.val)
	}
	if !s.suppress {
		s.announce(s.valText)
	}
}

func (s *Session) announce(msg string) {
	if s.announcer != nil {
		s.announcer.Announce(msg, true)
	}
}
