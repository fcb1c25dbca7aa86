package globalhook

import (
	"testing"
	"unsafe"
)

// Package-level so the structs never live on a movable goroutine stack while
// only a uintptr refers to them.
var (
	testMouseStruct MouseLLHookStruct
	testKeyStruct   KeyboardLLHookStruct
)

func mouseLParam(s MouseLLHookStruct) uintptr {
	testMouseStruct = s
	return uintptr(unsafe.Pointer(&testMouseStruct))
}

func keyLParam(s KeyboardLLHookStruct) uintptr {
	testKeyStruct = s
	return uintptr(unsafe.Pointer(&testKeyStruct))
}

func TestDecodeMouse(t *testing.T) {
	lParam := mouseLParam(MouseLLHookStruct{
		Pt:          POINT{X: 640, Y: -12},
		MouseData:   0x00780000,
		Flags:       LLMHF_INJECTED,
		Time:        123456,
		DwExtraInfo: 0xBEEF,
	})

	rec := decodeMouse(WM_MOUSEWHEEL, lParam)
	if rec.Pt.X != 640 || rec.Pt.Y != -12 {
		t.Fatalf("unexpected point %+v", rec.Pt)
	}
	if rec.Delta != 120 {
		t.Fatalf("expected delta 120, got %d", rec.Delta)
	}
	if rec.Message != WM_MOUSEWHEEL || rec.MouseData != 0x00780000 {
		t.Fatalf("unexpected record %+v", rec)
	}
	if rec.Flags != LLMHF_INJECTED || rec.Time != 123456 || rec.ExtraInfo != 0xBEEF {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestDecodeKeyboard(t *testing.T) {
	lParam := keyLParam(KeyboardLLHookStruct{
		VkCode:      0x41,
		ScanCode:    30,
		Flags:       LLKHF_EXTENDED,
		Time:        42,
		DwExtraInfo: 7,
	})

	rec := decodeKeyboard(WM_KEYDOWN, lParam)
	want := KeyRecord{Message: WM_KEYDOWN, VkCode: 0x41, ScanCode: 30, Flags: LLKHF_EXTENDED, Time: 42, ExtraInfo: 7}
	if rec != want {
		t.Fatalf("expected %+v, got %+v", want, rec)
	}
}

func TestWheelDelta(t *testing.T) {
	cases := []struct {
		name      string
		msg       uint32
		mouseData uint32
		want      int16
	}{
		{"forward notch", WM_MOUSEWHEEL, 0x00780000, 120},
		{"backward notch", WM_MOUSEWHEEL, 0xFF880000, -120},
		{"low word ignored", WM_MOUSEWHEEL, 0x0078FFFF, 120},
		{"zero", WM_MOUSEWHEEL, 0, 0},
		{"horizontal wheel not reported", WM_MOUSEHWHEEL, 0x00780000, 0},
		{"x button not reported", WM_XBUTTONDOWN, 0x00010000, 0},
		{"move", WM_MOUSEMOVE, 0x00780000, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := wheelDelta(tc.msg, tc.mouseData); got != tc.want {
				t.Fatalf("wheelDelta(%#x, %#x) = %d, want %d", tc.msg, tc.mouseData, got, tc.want)
			}
		})
	}
}
