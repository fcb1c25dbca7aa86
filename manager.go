package globalhook

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Options configures a Manager. The zero value uses the platform hooks and
// discards log output.
type Options struct {
	Native Native
	Logger *slog.Logger
}

// registration is the per-family hook state. handle and proc are both set
// while the hook is installed and both zero otherwise.
type registration struct {
	family Family
	handle Handle
	proc   HookProc
}

// Manager installs low-level mouse and keyboard hooks while somebody listens
// and turns their callbacks into derived events.
//
// A Manager is not safe for concurrent use. Subscribe, Unsubscribe and Close
// must run on the thread that pumps messages, which is also the thread the
// native layer calls the hooks on.
type Manager struct {
	native Native
	log    *slog.Logger

	mouse    registration
	keyboard registration

	mouseSubs [mouseEventCount][]*Subscription
	keySubs   [keyEventCount][]*Subscription

	// lastPt is the pointer position of the last raised MouseMove.
	lastPt POINT
	closed bool
}

// New creates a Manager. No hook is installed until the first subscription.
func New(opts Options) (*Manager, error) {
	native := opts.Native
	if native == nil {
		var err error
		native, err = platformNative()
		if err != nil {
			return nil, err
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{
		native:   native,
		log:      logger,
		mouse:    registration{family: FamilyMouse},
		keyboard: registration{family: FamilyKeyboard},
	}, nil
}

// Subscription is a live handler registration returned by SubscribeMouse or
// SubscribeKey.
type Subscription struct {
	m      *Manager
	family Family
	event  int
	mouse  MouseHandler
	key    KeyHandler
	active bool
}

// Family reports which hook the subscription keeps alive.
func (s *Subscription) Family() Family { return s.family }

// SubscribeMouse registers h for ev, installing the mouse hook first if this
// is the first mouse subscriber. When installation fails nothing is registered.
func (m *Manager) SubscribeMouse(ev MouseEvent, h MouseHandler) (*Subscription, error) {
	if h == nil {
		return nil, ErrNilHandler
	}
	if ev < 0 || ev >= mouseEventCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEvent, int(ev))
	}
	if m.closed {
		return nil, ErrClosed
	}
	if err := m.ensureInstalled(FamilyMouse); err != nil {
		return nil, err
	}
	s := &Subscription{m: m, family: FamilyMouse, event: int(ev), mouse: h, active: true}
	m.mouseSubs[ev] = append(m.mouseSubs[ev], s)
	return s, nil
}

// SubscribeKey registers h for ev, installing the keyboard hook first if this
// is the first keyboard subscriber. When installation fails nothing is registered.
func (m *Manager) SubscribeKey(ev KeyEvent, h KeyHandler) (*Subscription, error) {
	if h == nil {
		return nil, ErrNilHandler
	}
	if ev < 0 || ev >= keyEventCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEvent, int(ev))
	}
	if m.closed {
		return nil, ErrClosed
	}
	if err := m.ensureInstalled(FamilyKeyboard); err != nil {
		return nil, err
	}
	s := &Subscription{m: m, family: FamilyKeyboard, event: int(ev), key: h, active: true}
	m.keySubs[ev] = append(m.keySubs[ev], s)
	return s, nil
}

// Unsubscribe removes the handler and uninstalls the family's hook when it
// was the last one. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() error {
	if s == nil || !s.active {
		return nil
	}
	s.active = false
	m := s.m
	switch s.family {
	case FamilyMouse:
		m.mouseSubs[s.event] = without(m.mouseSubs[s.event], s)
	case FamilyKeyboard:
		m.keySubs[s.event] = without(m.keySubs[s.event], s)
	}
	return m.tryUninstall(s.family)
}

// without returns a new slice so dispatch loops ranging over the old one are
// not disturbed by a handler unsubscribing itself.
func without(subs []*Subscription, s *Subscription) []*Subscription {
	out := make([]*Subscription, 0, len(subs))
	for _, sub := range subs {
		if sub != s {
			out = append(out, sub)
		}
	}
	return out
}

// Subscribers returns the number of live handlers across all events of a family.
func (m *Manager) Subscribers(f Family) int {
	n := 0
	switch f {
	case FamilyMouse:
		for _, subs := range m.mouseSubs {
			n += len(subs)
		}
	case FamilyKeyboard:
		for _, subs := range m.keySubs {
			n += len(subs)
		}
	}
	return n
}

// Installed reports whether the native hook for f is currently installed.
func (m *Manager) Installed(f Family) bool {
	return m.reg(f).handle != 0
}

// Close uninstalls both hooks and drops every subscription. It is the
// teardown path for process exit and is safe to call more than once.
func (m *Manager) Close() error {
	m.closed = true
	for i := range m.mouseSubs {
		for _, s := range m.mouseSubs[i] {
			s.active = false
		}
		m.mouseSubs[i] = nil
	}
	for i := range m.keySubs {
		for _, s := range m.keySubs[i] {
			s.active = false
		}
		m.keySubs[i] = nil
	}
	return errors.Join(m.forceUninstall(FamilyKeyboard), m.forceUninstall(FamilyMouse))
}

func (m *Manager) reg(f Family) *registration {
	if f == FamilyKeyboard {
		return &m.keyboard
	}
	return &m.mouse
}

func (m *Manager) procFor(f Family) HookProc {
	if f == FamilyKeyboard {
		return m.keyboardProc
	}
	return m.mouseProc
}

// ensureInstalled installs the hook for f unless it already is.
func (m *Manager) ensureInstalled(f Family) error {
	reg := m.reg(f)
	if reg.handle != 0 {
		return nil
	}

	// The proc is retained before the native layer can call it.
	reg.proc = m.procFor(f)
	h := m.native.InstallHook(f, reg.proc)
	if h == 0 {
		err := &OSError{Op: "install", Family: f, Code: m.native.LastError()}
		reg.proc = nil
		m.log.Error("install hook failed", "family", f.String(), "code", err.Code)

		// A keyboard failure must not leave a mouse hook behind.
		if f == FamilyKeyboard {
			if rmErr := m.forceUninstall(FamilyMouse); rmErr != nil {
				return errors.Join(err, rmErr)
			}
		}
		return err
	}
	reg.handle = h
	m.log.Info("hook installed", "family", f.String(), "handle", uintptr(h))
	return nil
}

// tryUninstall removes the hook for f once no event of the family has subscribers.
func (m *Manager) tryUninstall(f Family) error {
	if m.Subscribers(f) > 0 {
		return nil
	}
	return m.forceUninstall(f)
}

// forceUninstall removes the hook for f regardless of subscribers. Local state
// is cleared even when the platform refuses, so a stale handle is never kept.
func (m *Manager) forceUninstall(f Family) error {
	reg := m.reg(f)
	if reg.handle == 0 {
		return nil
	}

	h := reg.handle
	ok := m.native.RemoveHook(h)
	var code uint32
	if !ok {
		code = m.native.LastError()
	}
	reg.handle = 0
	reg.proc = nil

	if !ok {
		m.log.Error("remove hook failed", "family", f.String(), "handle", uintptr(h), "code", code)
		return &OSError{Op: "remove", Family: f, Code: code}
	}
	m.log.Info("hook removed", "family", f.String(), "handle", uintptr(h))
	return nil
}
