// Package surface moves the active parameter session from MIDI controllers.
package surface

import (
	"fmt"
	"io"

	"github.com/reaccess/reaccess/session"
	"gitlab.com/gomidi/midi/v2"
	"gopkg.in/yaml.v3"
)

type (
	Mode string

	// Control binds one controller number to a session action. Channel is
	// 1 to 16; 0 matches any channel.
	Control struct {
		Channel  int  `yaml:"channel,omitempty"`
		CC       int  `yaml:"cc"`
		Mode     Mode `yaml:"mode"`
		Backward bool `yaml:"backward,omitempty"`
		Page     bool `yaml:"page,omitempty"`
	}

	Mapping struct {
		Controls []Control `yaml:"controls"`
	}

	// Controller applies MIDI messages to the session open in Manager. Its
	// HandleMessage has the signature of a gomidi listener.
	Controller struct {
		Mapping Mapping
		Manager *session.Manager
	}
)

const (
	// Absolute controls set the value across the full range.
	Absolute Mode = "absolute"
	// Relative controls send 1 to 63 to step up and 65 to 127 to step down,
	// counting steps in two's complement.
	Relative Mode = "relative"
	// Button controls cycle through the parameters when pressed.
	Button Mode = "button"
)

// LoadMapping reads a mapping file, rejecting unknown fields.
func LoadMapping(r io.Reader) (Mapping, error) {
	var m Mapping
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return Mapping{}, fmt.Errorf("surface mapping: %w", err)
	}
	return m, m.Validate()
}

func (m Mapping) Validate() error {
	for i, c := range m.Controls {
		if c.Channel < 0 || c.Channel > 16 {
			return fmt.Errorf("control %d: channel %d out of range", i, c.Channel)
		}
		if c.CC < 0 || c.CC > 127 {
			return fmt.Errorf("control %d: cc %d out of range", i, c.CC)
		}
		switch c.Mode {
		case Absolute, Relative, Button:
		default:
			return fmt.Errorf("control %d: unknown mode %q", i, c.Mode)
		}
	}
	return nil
}

// Find returns the first control matching a controller on a zero based
// channel.
func (m Mapping) Find(channel, cc uint8) (Control, bool) {
	for _, c := range m.Controls {
		if c.CC == int(cc) && (c.Channel == 0 || c.Channel == int(channel)+1) {
			return c, true
		}
	}
	return Control{}, false
}

// Apply moves s according to a controller value and reports whether the
// session changed.
func (c Control) Apply(s *session.Session, value uint8) bool {
	switch c.Mode {
	case Absolute:
		p := s.Param()
		if p == nil {
			return false
		}
		b := p.Bounds()
		return s.Slide(b.Min + float64(value)/127*(b.Max-b.Min))
	case Relative:
		n, up := int(value), true
		if value == 0 || value == 64 {
			return false
		}
		if value > 64 {
			n, up = 128-int(value), false
		}
		changed := false
		for range n {
			if !c.step(s, up) {
				break
			}
			changed = true
		}
		return changed
	case Button:
		if value == 0 {
			return false
		}
		return s.Cycle(c.Backward)
	}
	return false
}

func (c Control) step(s *session.Session, up bool) bool {
	switch {
	case up && c.Page:
		return s.PageUp()
	case up:
		return s.StepUp()
	case c.Page:
		return s.PageDown()
	default:
		return s.StepDown()
	}
}

// Handle applies msg when it is a mapped control change and a session is
// active.
func (c *Controller) Handle(msg midi.Message) bool {
	var channel, cc, value uint8
	if !msg.GetControlChange(&channel, &cc, &value) {
		return false
	}
	ctl, ok := c.Mapping.Find(channel, cc)
	if !ok || c.Manager == nil {
		return false
	}
	s := c.Manager.Active()
	if s == nil {
		return false
	}
	return ctl.Apply(s, value)
}

func (c *Controller) HandleMessage(msg midi.Message, timestampms int32) {
	c.Handle(msg)
}
