// Package window owns overlay window geometry and visibility. The host
// UI supplies raw OS window handles; the controller translates logical
// geometry requests into platform-correct frame updates, keeping the
// window's top-left corner stationary across resizes regardless of where
// the platform puts its coordinate origin.
package window

import "errors"

// Well-known window labels.
const (
	Main     = "main"
	Settings = "settings"
)

// ErrUnsupported is returned by NewHandle on platforms without a native
// window-handle implementation.
var ErrUnsupported = errors.New("window control is not supported on this platform")

// Origin names the corner the platform's window coordinates grow from.
type Origin int

const (
	// OriginTopLeft: y grows downward from the top of the display.
	OriginTopLeft Origin = iota
	// OriginBottomLeft: y grows upward from the bottom of the primary
	// display (macOS).
	OriginBottomLeft
)

// Geometry is a window frame in the platform's native coordinates.
type Geometry struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Handle is one OS window owned by the application.
type Handle interface {
	Origin() Origin
	Frame() (Geometry, error)
	SetFrame(Geometry) error
	Visible() (bool, error)
	Show() error
	Hide() error
	Focused() (bool, error)
	Focus() error
	SetContentProtected(enabled bool) error
}
