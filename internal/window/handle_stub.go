//go:build !windows && !darwin

package window

// NewHandle has no implementation on this platform; the controller treats
// the absent handle as a no-op target.
func NewHandle(raw uintptr) (Handle, error) {
	return nil, ErrUnsupported
}

// ConfigureOverlay is a no-op on this platform.
func ConfigureOverlay(h Handle) {}
