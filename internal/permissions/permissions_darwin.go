//go:build darwin

package permissions

/*
#cgo LDFLAGS: -framework CoreGraphics
#include <CoreGraphics/CoreGraphics.h>

int checkScreenRecordingPermission() {
	return CGPreflightScreenCaptureAccess() ? 1 : 0;
}

int requestScreenRecordingPermission() {
	return CGRequestScreenCaptureAccess() ? 1 : 0;
}
*/
import "C"

import "fmt"

// CheckScreenRecording reports whether the app may capture the screen.
func CheckScreenRecording() bool {
	return C.checkScreenRecordingPermission() == 1
}

// RequestScreenRecording triggers the system screen-recording prompt.
// macOS only shows it once; afterwards the user must flip the toggle in
// System Settings themselves.
func RequestScreenRecording() bool {
	return C.requestScreenRecordingPermission() == 1
}

// EnsurePermissions checks and requests the permissions capture needs.
func EnsurePermissions() error {
	if CheckScreenRecording() {
		return nil
	}
	if RequestScreenRecording() {
		return nil
	}
	fmt.Println("⚠️  Screen recording permission required")
	fmt.Println("   Go to: System Settings → Privacy & Security → Screen Recording")
	return fmt.Errorf("screen recording permission not granted")
}
