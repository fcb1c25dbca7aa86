//go:build windows

package globalhook

import (
	"github.com/AllenDang/w32"
	"golang.org/x/sys/windows"
)

// w32 has no GetKeyState or PostThreadMessage wrapper.
var (
	user32DLL   = windows.NewLazyDLL("user32.dll")
	getKeyState = user32DLL.NewProc("GetKeyState")
)

// user32Native talks to user32.dll. Hooks are delivered to the thread that
// installed them, so every call must come from the thread pumping messages.
type user32Native struct {
	module w32.HINSTANCE
	table  *callbackTable
	// adapters are handed to SetWindowsHookEx on every install; they are
	// created once because each new func value costs a runtime callback slot.
	adapters [2]w32.HOOKPROC
	hooks    map[Handle]Family
}

func platformNative() (Native, error) {
	n := &user32Native{
		module: w32.GetModuleHandle(""),
		hooks:  make(map[Handle]Family),
	}
	n.table = newCallbackTable(func(nCode int, wParam, lParam uintptr) uintptr {
		return n.CallNextHook(0, nCode, wParam, lParam)
	})
	for i := range n.adapters {
		entry := n.table.entry(Family(i))
		n.adapters[i] = func(nCode int, wParam w32.WPARAM, lParam w32.LPARAM) w32.LRESULT {
			return w32.LRESULT(entry(nCode, uintptr(wParam), uintptr(lParam)))
		}
	}
	return n, nil
}

func (n *user32Native) InstallHook(f Family, proc HookProc) Handle {
	n.table.bind(f, proc)
	h := Handle(w32.SetWindowsHookEx(f.hookKind(), n.adapters[f], n.module, 0))
	if h == 0 {
		n.table.unbind(f)
		return 0
	}
	n.hooks[h] = f
	return h
}

// RemoveHook unbinds the proc even when the platform refuses, matching the
// Manager, which forgets the handle either way.
func (n *user32Native) RemoveHook(h Handle) bool {
	ok := w32.UnhookWindowsHookEx(w32.HHOOK(h))
	if f, known := n.hooks[h]; known {
		n.table.unbind(f)
		delete(n.hooks, h)
	}
	return ok
}

func (n *user32Native) LastError() uint32 {
	return w32.GetLastError()
}

func (n *user32Native) CallNextHook(h Handle, nCode int, wParam, lParam uintptr) uintptr {
	return uintptr(w32.CallNextHookEx(w32.HHOOK(h), nCode, w32.WPARAM(wParam), w32.LPARAM(lParam)))
}

func (n *user32Native) KeyState(vk int) int16 {
	r, _, _ := getKeyState.Call(uintptr(vk))
	return int16(r)
}

func (n *user32Native) KeyboardState(state *[256]byte) bool {
	s := state[:]
	return w32.GetKeyboardState(&s)
}

// ToASCII returns ToAscii's count. w32 widens the 32-bit result to int, so it
// is narrowed back through int32 to keep negative counts negative.
func (n *user32Native) ToASCII(vk, scan uint32, state *[256]byte, flags uint32) (int, [2]byte) {
	var ch uint16
	count := int32(w32.ToAscii(uint(vk), uint(scan), &state[0], &ch, uint(flags)))
	return int(count), [2]byte{byte(ch), byte(ch >> 8)}
}
