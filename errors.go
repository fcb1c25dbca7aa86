package globalhook

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrUnsupportedPlatform is returned by New when no Native is supplied on a
	// platform without low-level hooks.
	ErrUnsupportedPlatform = errors.New("globalhook: low-level input hooks require windows")
	ErrNilHandler          = errors.New("globalhook: nil handler")
	ErrUnknownEvent        = errors.New("globalhook: unknown event")
	ErrClosed              = errors.New("globalhook: manager closed")
)

// OSError reports a failed hook install or removal together with the platform
// error code read right after the failing call.
type OSError struct {
	Op     string
	Family Family
	Code   uint32
}

func (e *OSError) Error() string {
	return fmt.Sprintf("globalhook: %s %s hook: %v (code %d)", e.Op, e.Family, syscall.Errno(e.Code), e.Code)
}

func (e *OSError) Unwrap() error {
	return syscall.Errno(e.Code)
}
