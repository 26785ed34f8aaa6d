// Package capture produces PNG-encoded bitmaps of the primary display.
// The strategy differs per platform: macOS shells out to the system
// screenshot utility, Windows reads the screen through GDI, Linux uses
// the display-capture library. All variants return the frame entirely in
// memory and leave nothing behind on disk.
package capture

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Result is one captured frame. Ownership passes to the caller; frames
// are never cached or reused.
type Result struct {
	PNG    []byte
	Width  int
	Height int
}

// Provider captures the primary display. Calls are independent and
// reentrant; concurrent captures must not collide.
type Provider interface {
	Capture() (*Result, error)
}

var (
	ErrUtilityMissing   = errors.New("screenshot utility not found")
	ErrPermissionDenied = errors.New("screen recording permission denied")
	ErrZeroDisplay      = errors.New("display has zero dimensions")
	ErrEncodeFailed     = errors.New("png encode failed")
	ErrUnsupported      = errors.New("screen capture is not supported on this platform")
)

// New returns the capture strategy for the current platform, selected
// once at startup.
func New() Provider {
	return newProvider()
}

// tempPNGPath returns a uniquely named path in the system temp dir, so
// concurrent CLI captures never share a file.
func tempPNGPath() string {
	return filepath.Join(os.TempDir(), "lens_capture_"+uuid.NewString()+".png")
}
