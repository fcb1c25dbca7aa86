package globalhook

import "unsafe"

// decodeMouse reads the MSLLHOOKSTRUCT the native layer passed as lParam.
func decodeMouse(wParam, lParam uintptr) MouseRecord {
	mhs := (*MouseLLHookStruct)(unsafe.Pointer(lParam))
	return mouseRecord(uint32(wParam), mhs)
}

func mouseRecord(msg uint32, mhs *MouseLLHookStruct) MouseRecord {
	return MouseRecord{
		Message:   msg,
		Pt:        mhs.Pt,
		MouseData: mhs.MouseData,
		Delta:     wheelDelta(msg, mhs.MouseData),
		Flags:     mhs.Flags,
		Time:      mhs.Time,
		ExtraInfo: mhs.DwExtraInfo,
	}
}

// decodeKeyboard reads the KBDLLHOOKSTRUCT the native layer passed as lParam.
func decodeKeyboard(wParam, lParam uintptr) KeyRecord {
	khs := (*KeyboardLLHookStruct)(unsafe.Pointer(lParam))
	return keyRecord(uint32(wParam), khs)
}

func keyRecord(msg uint32, khs *KeyboardLLHookStruct) KeyRecord {
	return KeyRecord{
		Message:   msg,
		VkCode:    khs.VkCode,
		ScanCode:  khs.ScanCode,
		Flags:     khs.Flags,
		Time:      khs.Time,
		ExtraInfo: khs.DwExtraInfo,
	}
}

// wheelDelta returns the signed high word of mouseData for WM_MOUSEWHEEL.
// Horizontal wheel and X buttons also use the high word but are not reported.
func wheelDelta(msg, mouseData uint32) int16 {
	if msg != WM_MOUSEWHEEL {
		return 0
	}
	return int16(mouseData >> 16)
}
