//go:build !windows

package globalhook

func platformNative() (Native, error) {
	return nil, ErrUnsupportedPlatform
}
