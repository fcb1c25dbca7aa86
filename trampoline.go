package globalhook

// callbackTable hands the native layer one fixed entry point per family and
// routes each call to the proc currently bound for that family. Windows turns
// every distinct function value into a permanent callback slot, so the entry
// points are built once and reused by every install.
type callbackTable struct {
	procs   [2]HookProc
	entries [2]HookProc
	forward HookProc
}

// newCallbackTable builds the entry points. Calls arriving while no proc is
// bound go to forward.
func newCallbackTable(forward HookProc) *callbackTable {
	t := &callbackTable{forward: forward}
	for i := range t.entries {
		f := Family(i)
		t.entries[i] = func(nCode int, wParam, lParam uintptr) uintptr {
			if proc := t.procs[f]; proc != nil {
				return proc(nCode, wParam, lParam)
			}
			return t.forward(nCode, wParam, lParam)
		}
	}
	return t
}

// bind routes the family's entry point to proc.
func (t *callbackTable) bind(f Family, proc HookProc) {
	t.procs[f] = proc
}

func (t *callbackTable) unbind(f Family) {
	t.procs[f] = nil
}

func (t *callbackTable) entry(f Family) HookProc {
	return t.entries[f]
}
