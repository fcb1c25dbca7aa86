package globalhook

// MouseEvent names a derived mouse event.
type MouseEvent int

const (
	MouseMove MouseEvent = iota
	MouseClick
	MouseDoubleClick
	MouseDown
	MouseUp
	MouseWheel

	mouseEventCount
)

func (e MouseEvent) String() string {
	switch e {
	case MouseMove:
		return "MouseMove"
	case MouseClick:
		return "MouseClick"
	case MouseDoubleClick:
		return "MouseDoubleClick"
	case MouseDown:
		return "MouseDown"
	case MouseUp:
		return "MouseUp"
	case MouseWheel:
		return "MouseWheel"
	default:
		return "MouseEvent(?)"
	}
}

// KeyEvent names a derived keyboard event.
type KeyEvent int

const (
	KeyDown KeyEvent = iota
	KeyUp
	KeyPress

	keyEventCount
)

func (e KeyEvent) String() string {
	switch e {
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	case KeyPress:
		return "KeyPress"
	default:
		return "KeyEvent(?)"
	}
}

// handleable carries the suppression flag. It can be set but never cleared.
type handleable struct {
	handled bool
}

// Handle asks for the input to be swallowed instead of passed on to the rest
// of the system.
func (h *handleable) Handle() { h.handled = true }

// Handled reports whether any subscriber has called Handle.
func (h *handleable) Handled() bool { return h.handled }

// MouseEventArgs is shared by every mouse event raised for one native callback,
// so a Handle from any of them suppresses the underlying input.
type MouseEventArgs struct {
	handleable

	X, Y      int32
	MouseData uint32
	// Delta is the wheel rotation in multiples of WHEEL_DELTA, zero for non-wheel input.
	Delta     int16
	Button    Button
	Clicks    int
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// Injected reports whether the input was generated by SendInput or similar.
func (e *MouseEventArgs) Injected() bool { return e.Flags&LLMHF_INJECTED != 0 }

// KeyEventArgs is created fresh for every keyboard event raised.
type KeyEventArgs struct {
	handleable

	VirtualKeyCode uint32
	ScanCode       uint32
	Flags          uint32
	Time           uint32
	ExtraInfo      uintptr
	// Character is set only for KeyPress.
	Character    rune
	HasCharacter bool
}

func (e *KeyEventArgs) Extended() bool { return e.Flags&LLKHF_EXTENDED != 0 }
func (e *KeyEventArgs) Injected() bool { return e.Flags&LLKHF_INJECTED != 0 }
func (e *KeyEventArgs) AltDown() bool  { return e.Flags&LLKHF_ALTDOWN != 0 }

type (
	MouseHandler func(e *MouseEventArgs)
	KeyHandler   func(e *KeyEventArgs)
)

func newMouseEventArgs(rec MouseRecord, button Button, clicks int) *MouseEventArgs {
	return &MouseEventArgs{
		X:         rec.Pt.X,
		Y:         rec.Pt.Y,
		MouseData: rec.MouseData,
		Delta:     rec.Delta,
		Button:    button,
		Clicks:    clicks,
		Flags:     rec.Flags,
		Time:      rec.Time,
		ExtraInfo: rec.ExtraInfo,
	}
}

func newKeyEventArgs(rec KeyRecord) *KeyEventArgs {
	return &KeyEventArgs{
		VirtualKeyCode: rec.VkCode,
		ScanCode:       rec.ScanCode,
		Flags:          rec.Flags,
		Time:           rec.Time,
		ExtraInfo:      rec.ExtraInfo,
	}
}

// MouseEvents returns every derived mouse event.
func MouseEvents() []MouseEvent {
	return []MouseEvent{MouseMove, MouseClick, MouseDoubleClick, MouseDown, MouseUp, MouseWheel}
}

// KeyEvents returns every derived keyboard event.
func KeyEvents() []KeyEvent {
	return []KeyEvent{KeyDown, KeyUp, KeyPress}
}
