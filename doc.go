// Package globalhook reports system-wide mouse and keyboard activity, whichever
// window has focus, through low-level input hooks.
//
// Subscribing to any mouse event installs a WH_MOUSE_LL hook and subscribing
// to any keyboard event installs a WH_KEYBOARD_LL hook. Each hook is removed
// again when its last subscriber leaves. A subscriber that calls Handle on the
// event args swallows the input for the rest of the system.
//
//	runtime.LockOSThread()
//	m, err := globalhook.New(globalhook.Options{})
//	...
//	sub, err := m.SubscribeKey(globalhook.KeyPress, func(e *globalhook.KeyEventArgs) {
//		fmt.Printf("%c", e.Character)
//	})
//	...
//	var pump globalhook.MessagePump
//	pump.Run()
//
// Hooks are called on the thread that installed them, and only while that
// thread pumps messages, so subscriptions and the pump belong on one locked
// OS thread.
package globalhook
