package session

import (
	"time"

	"github.com/reaccess/reaccess/narrate"
	"github.com/reaccess/reaccess/params"
)

type (
	// KeyHook routes key presses to the active session. The Manager
	// registers it when a session opens and unregisters it when the
	// session closes.
	KeyHook interface {
		Register(s *Session)
		Unregister(s *Session)
	}

	// Manager owns the one session that may be active at a time.
	Manager struct {
		Announcer narrate.Announcer
		Hook      KeyHook
		// Clock runs deferred closes. Nil means narrate.RealClock.
		Clock      narrate.Clock
		CloseDelay time.Duration
		Options    Options

		active  *Session
		closing bool
	}
)

// Open replaces any active session with one for src. An empty source opens
// nothing and returns ErrEmptySource.
func (m *Manager) Open(src params.Source) (*Session, error) {
	s, err := Open(src, m.Announcer, m.Options)
	if err != nil {
		return nil, err
	}
	m.Close()
	m.active = s
	if m.Hook != nil {
		m.Hook.Register(s)
	}
	return s, nil
}

// Active returns the open session, or nil.
func (m *Manager) Active() *Session { return m.active }

func (m *Manager) IsActive() bool { return m.active != nil }

// Close ends the active session immediately.
func (m *Manager) Close() {
	s := m.active
	if s == nil {
		return
	}
	m.active = nil
	m.closing = false
	if m.Hook != nil {
		m.Hook.Unregister(s)
	}
}

// Deactivate is called when the session loses focus. The session is closed
// after CloseDelay, never from inside the caller, unless it was replaced by
// then.
func (m *Manager) Deactivate() {
	s := m.active
	if s == nil || m.closing {
		return
	}
	m.closing = true
	m.clock().AfterFunc(m.CloseDelay, func() {
		if m.active == s {
			m.Close()
		}
	})
}

// HandleKey passes k to the active session.
func (m *Manager) HandleKey(k Key) bool {
	if m.active == nil {
		return false
	}
	return m.active.HandleKey(k)
}

func (m *Manager) clock() narrate.Clock {
	if m.Clock == nil {
		return narrate.RealClock{}
	}
	return m.Clock
}
