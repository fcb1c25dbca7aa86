package globalhook

import (
	"runtime/debug"
	"unicode"
)

// mouseProc is the WH_MOUSE_LL procedure handed to the native layer.
func (m *Manager) mouseProc(nCode int, wParam, lParam uintptr) uintptr {
	if nCode >= HC_ACTION {
		rec := decodeMouse(wParam, lParam)
		if m.dispatchMouse(rec) {
			return suppressResult
		}
	}
	return m.native.CallNextHook(m.mouse.handle, nCode, wParam, lParam)
}

// dispatchMouse raises the derived mouse events for one record and reports
// whether any subscriber handled it. Double clicks raise click and
// double-click only, never down or up.
func (m *Manager) dispatchMouse(rec MouseRecord) bool {
	var (
		button    Button
		clicks    int
		mouseDown bool
		mouseUp   bool
	)
	switch rec.Message {
	case WM_LBUTTONDOWN:
		button, clicks, mouseDown = ButtonLeft, 1, true
	case WM_LBUTTONUP:
		button, clicks, mouseUp = ButtonLeft, 1, true
	case WM_LBUTTONDBLCLK:
		button, clicks = ButtonLeft, 2
	case WM_RBUTTONDOWN:
		button, clicks, mouseDown = ButtonRight, 1, true
	case WM_RBUTTONUP:
		button, clicks, mouseUp = ButtonRight, 1, true
	case WM_RBUTTONDBLCLK:
		button, clicks = ButtonRight, 2
	}

	args := newMouseEventArgs(rec, button, clicks)

	if mouseUp {
		m.raiseMouse(MouseUp, args)
	}
	if mouseDown {
		m.raiseMouse(MouseDown, args)
	}
	if clicks > 0 {
		m.raiseMouse(MouseClick, args)
	}
	if clicks == 2 {
		m.raiseMouse(MouseDoubleClick, args)
	}
	if rec.Delta != 0 {
		m.raiseMouse(MouseWheel, args)
	}
	if len(m.mouseSubs[MouseMove]) > 0 && rec.Pt != m.lastPt {
		m.lastPt = rec.Pt
		m.raiseMouse(MouseMove, args)
	}

	return args.Handled()
}

func (m *Manager) raiseMouse(ev MouseEvent, args *MouseEventArgs) {
	for _, s := range m.mouseSubs[ev] {
		if s.active {
			m.invokeMouse(ev, s.mouse, args)
		}
	}
}

func (m *Manager) invokeMouse(ev MouseEvent, h MouseHandler, args *MouseEventArgs) {
	defer m.recoverHandler(ev.String())
	h(args)
}

// keyboardProc is the WH_KEYBOARD_LL procedure handed to the native layer.
func (m *Manager) keyboardProc(nCode int, wParam, lParam uintptr) uintptr {
	if nCode >= HC_ACTION {
		rec := decodeKeyboard(wParam, lParam)
		if m.dispatchKey(rec) {
			return suppressResult
		}
	}
	return m.native.CallNextHook(m.keyboard.handle, nCode, wParam, lParam)
}

// dispatchKey raises KeyDown, KeyPress and KeyUp for one record, each with its
// own args, and reports whether any of them was handled.
func (m *Manager) dispatchKey(rec KeyRecord) bool {
	handled := false

	if (rec.Message == WM_KEYDOWN || rec.Message == WM_SYSKEYDOWN) && len(m.keySubs[KeyDown]) > 0 {
		args := newKeyEventArgs(rec)
		m.raiseKey(KeyDown, args)
		handled = args.Handled()
	}

	if rec.Message == WM_KEYDOWN && len(m.keySubs[KeyPress]) > 0 {
		if ch, ok := m.translate(rec); ok {
			args := newKeyEventArgs(rec)
			args.Character = ch
			args.HasCharacter = true
			m.raiseKey(KeyPress, args)
			handled = handled || args.Handled()
		}
	}

	if (rec.Message == WM_KEYUP || rec.Message == WM_SYSKEYUP) && len(m.keySubs[KeyUp]) > 0 {
		args := newKeyEventArgs(rec)
		m.raiseKey(KeyUp, args)
		handled = handled || args.Handled()
	}

	return handled
}

// translate maps a key-down to its single printable character. The keyboard
// state seen from a low-level hook lags behind, so letters are upper-cased
// when exactly one of shift and caps lock is active.
func (m *Manager) translate(rec KeyRecord) (rune, bool) {
	shift := m.native.KeyState(VK_SHIFT) < 0
	capsLock := m.native.KeyState(VK_CAPITAL) != 0

	var state [256]byte
	if !m.native.KeyboardState(&state) {
		m.log.Debug("keyboard state unavailable", "vk", rec.VkCode)
	}

	n, buf := m.native.ToASCII(rec.VkCode, rec.ScanCode, &state, rec.Flags)
	if n != 1 {
		return 0, false
	}

	ch := rune(buf[0])
	if shift != capsLock && unicode.IsLetter(ch) {
		ch = unicode.ToUpper(ch)
	}
	return ch, true
}

func (m *Manager) raiseKey(ev KeyEvent, args *KeyEventArgs) {
	for _, s := range m.keySubs[ev] {
		if s.active {
			m.invokeKey(ev, s.key, args)
		}
	}
}

func (m *Manager) invokeKey(ev KeyEvent, h KeyHandler, args *KeyEventArgs) {
	defer m.recoverHandler(ev.String())
	h(args)
}

// recoverHandler keeps a panicking subscriber from unwinding through the
// native callback frame. The remaining subscribers still run.
func (m *Manager) recoverHandler(event string) {
	if r := recover(); r != nil {
		m.log.Error("subscriber panicked", "event", event, "panic", r, "stack", string(debug.Stack()))
	}
}
