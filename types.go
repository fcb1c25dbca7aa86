package globalhook

// Handle identifies an installed native hook. Zero means not installed.
type Handle uintptr

// HookProc is the shape of a low-level hook procedure as the native layer calls it.
type HookProc func(nCode int, wParam, lParam uintptr) uintptr

type POINT struct {
	X, Y int32
}

// MouseLLHookStruct mirrors MSLLHOOKSTRUCT. Field order must not change.
type MouseLLHookStruct struct {
	Pt          POINT
	MouseData   uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

// KeyboardLLHookStruct mirrors KBDLLHOOKSTRUCT. Field order must not change.
type KeyboardLLHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

// MouseRecord is a decoded WH_MOUSE_LL callback.
type MouseRecord struct {
	Message   uint32
	Pt        POINT
	MouseData uint32
	Delta     int16
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// KeyRecord is a decoded WH_KEYBOARD_LL callback.
type KeyRecord struct {
	Message   uint32
	VkCode    uint32
	ScanCode  uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// Family groups derived events by the native hook that produces them.
type Family int

const (
	FamilyMouse Family = iota
	FamilyKeyboard
)

func (f Family) String() string {
	switch f {
	case FamilyMouse:
		return "mouse"
	case FamilyKeyboard:
		return "keyboard"
	default:
		return "unknown"
	}
}

// hookKind maps a family to its SetWindowsHookEx id.
func (f Family) hookKind() int {
	if f == FamilyKeyboard {
		return WH_KEYBOARD_LL
	}
	return WH_MOUSE_LL
}

// Button names the mouse button behind a derived event.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}
