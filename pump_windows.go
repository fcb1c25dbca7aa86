//go:build windows

package globalhook

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/AllenDang/w32"
	"golang.org/x/sys/windows"
)

var postThreadMessageW = user32DLL.NewProc("PostThreadMessageW")

// MessagePump drives the thread message queue that low-level hooks are
// delivered through. Hooks fire only while the installing thread pumps.
type MessagePump struct {
	threadID atomic.Uint32
}

// Run pins the calling goroutine to its OS thread and dispatches messages
// until Quit is called or WM_QUIT arrives. Install hooks on the same
// goroutine before calling Run, after runtime.LockOSThread.
func (p *MessagePump) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	p.threadID.Store(windows.GetCurrentThreadId())
	defer p.threadID.Store(0)

	var msg w32.MSG
	for {
		// GetMessage returns a 32-bit BOOL that w32 widens to int; -1 only
		// survives the narrowing back to int32.
		switch int32(w32.GetMessage(&msg, 0, 0, 0)) {
		case -1:
			return fmt.Errorf("globalhook: GetMessage: %w", windows.Errno(w32.GetLastError()))
		case 0:
			return nil
		}
		if msg.Message == WM_QUIT {
			return nil
		}
		w32.TranslateMessage(&msg)
		w32.DispatchMessage(&msg)
	}
}

// Quit asks a running pump to return. It may be called from any goroutine.
func (p *MessagePump) Quit() error {
	tid := p.threadID.Load()
	if tid == 0 {
		return nil
	}
	r, _, err := postThreadMessageW.Call(uintptr(tid), WM_QUIT, 0, 0)
	if r == 0 {
		if err == nil {
			err = errors.New("PostThreadMessageW failed")
		}
		return fmt.Errorf("globalhook: PostThreadMessageW: %w", err)
	}
	return nil
}
