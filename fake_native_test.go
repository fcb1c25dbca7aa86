package globalhook

// fakeNative records hook traffic and plays back canned keyboard state.
type fakeNative struct {
	nextHandle Handle
	hooks      map[Handle]Family
	procs      map[Family]HookProc

	installs int
	removes  int

	failInstall map[Family]uint32
	failRemove  uint32
	lastErr     uint32

	nextResult uintptr
	forwarded  int

	keyStates   map[int]int16
	stateOK     bool
	asciiCount  int
	asciiBuf    [2]byte
	translateVK []uint32
}

func newFakeNative() *fakeNative {
	return &fakeNative{
		nextHandle:  100,
		hooks:       make(map[Handle]Family),
		procs:       make(map[Family]HookProc),
		failInstall: make(map[Family]uint32),
		keyStates:   make(map[int]int16),
		stateOK:     true,
		nextResult:  0x77,
	}
}

func (f *fakeNative) InstallHook(fam Family, proc HookProc) Handle {
	f.installs++
	if code, ok := f.failInstall[fam]; ok {
		f.lastErr = code
		return 0
	}
	f.nextHandle++
	f.hooks[f.nextHandle] = fam
	f.procs[fam] = proc
	return f.nextHandle
}

func (f *fakeNative) RemoveHook(h Handle) bool {
	f.removes++
	fam, ok := f.hooks[h]
	if !ok {
		f.lastErr = 1404 // ERROR_INVALID_HOOK_HANDLE
		return false
	}
	delete(f.hooks, h)
	delete(f.procs, fam)
	if f.failRemove != 0 {
		f.lastErr = f.failRemove
		return false
	}
	return true
}

func (f *fakeNative) LastError() uint32 { return f.lastErr }

func (f *fakeNative) CallNextHook(h Handle, nCode int, wParam, lParam uintptr) uintptr {
	f.forwarded++
	return f.nextResult
}

func (f *fakeNative) KeyState(vk int) int16 { return f.keyStates[vk] }

func (f *fakeNative) KeyboardState(state *[256]byte) bool { return f.stateOK }

func (f *fakeNative) ToASCII(vk, scan uint32, state *[256]byte, flags uint32) (int, [2]byte) {
	f.translateVK = append(f.translateVK, vk)
	return f.asciiCount, f.asciiBuf
}

func (f *fakeNative) installed(fam Family) bool {
	for _, got := range f.hooks {
		if got == fam {
			return true
		}
	}
	return false
}

func newTestManager(t interface{ Fatalf(string, ...any) }) (*Manager, *fakeNative) {
	native := newFakeNative()
	m, err := New(Options{Native: native})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return m, native
}
