package globalhook

// Hook kinds accepted by SetWindowsHookEx.
const (
	WH_KEYBOARD_LL = 13
	WH_MOUSE_LL    = 14
)

// HC_ACTION is the only nCode a low-level hook procedure must process.
const HC_ACTION = 0

// Mouse messages delivered as wParam to a WH_MOUSE_LL procedure.
const (
	WM_MOUSEMOVE     = 0x0200
	WM_LBUTTONDOWN   = 0x0201
	WM_LBUTTONUP     = 0x0202
	WM_LBUTTONDBLCLK = 0x0203
	WM_RBUTTONDOWN   = 0x0204
	WM_RBUTTONUP     = 0x0205
	WM_RBUTTONDBLCLK = 0x0206
	WM_MBUTTONDOWN   = 0x0207
	WM_MBUTTONUP     = 0x0208
	WM_MBUTTONDBLCLK = 0x0209
	WM_MOUSEWHEEL    = 0x020A
	WM_XBUTTONDOWN   = 0x020B
	WM_XBUTTONUP     = 0x020C
	WM_XBUTTONDBLCLK = 0x020D
	WM_MOUSEHWHEEL   = 0x020E
)

// Keyboard messages delivered as wParam to a WH_KEYBOARD_LL procedure.
const (
	WM_KEYDOWN    = 0x0100
	WM_KEYUP      = 0x0101
	WM_SYSKEYDOWN = 0x0104
	WM_SYSKEYUP   = 0x0105
)

const WM_QUIT = 0x0012

// Virtual keys consulted for case correction.
const (
	VK_SHIFT   = 0x10
	VK_CAPITAL = 0x14
)

// WHEEL_DELTA is one notch of a standard wheel.
const WHEEL_DELTA = 120

// Flags carried in KBDLLHOOKSTRUCT.Flags.
const (
	LLKHF_EXTENDED = 0x01
	LLKHF_INJECTED = 0x10
	LLKHF_ALTDOWN  = 0x20
	LLKHF_UP       = 0x80
)

// Flags carried in MSLLHOOKSTRUCT.Flags.
const (
	LLMHF_INJECTED = 0x01
)

// suppressResult is returned to the hook chain to swallow an input event.
const suppressResult uintptr = 1
