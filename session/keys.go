package session

// Key is a key press the session handles itself while it is active.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	// KeyNextParam and KeyPrevParam are control+tab and
	// control+shift+tab.
	KeyNextParam
	KeyPrevParam
)

// HandleKey applies k and reports whether the key was consumed. Home goes to
// the maximum and End to the minimum, like the host's own sliders.
func (s *Session) HandleKey(k Key) bool {
	switch k {
	case KeyUp, KeyRight:
		s.StepUp()
	case KeyDown, KeyLeft:
		s.StepDown()
	case KeyPageUp:
		s.PageUp()
	case KeyPageDown:
		s.PageDown()
	case KeyHome:
		s.ToMax()
	case KeyEnd:
		s.ToMin()
	case KeyNextParam:
		s.Cycle(false)
	case KeyPrevParam:
		s.Cycle(true)
	default:
		return false
	}
	return true
}
