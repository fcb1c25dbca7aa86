package globalhook

// Native is the platform surface the Manager drives. The Windows build backs it
// with user32; tests back it with a fake.
type Native interface {
	// InstallHook registers proc for the family and returns zero on failure.
	InstallHook(f Family, proc HookProc) Handle
	// RemoveHook unregisters a hook and reports whether the platform accepted it.
	RemoveHook(h Handle) bool
	// LastError returns the platform error code of the last failed call.
	LastError() uint32
	CallNextHook(h Handle, nCode int, wParam, lParam uintptr) uintptr

	KeyState(vk int) int16
	KeyboardState(state *[256]byte) bool
	// ToASCII translates a key to at most two characters and returns how many were written.
	ToASCII(vk, scan uint32, state *[256]byte, flags uint32) (int, [2]byte)
}
