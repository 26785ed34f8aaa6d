//go:build windows

package window

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
	procShowWindow               = user32.NewProc("ShowWindow")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procSetWindowDisplayAffinity = user32.NewProc("SetWindowDisplayAffinity")
)

const (
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010

	swHide = 0
	swShow = 5

	wdaNone               = 0x00
	wdaExcludeFromCapture = 0x11
)

type winRect struct {
	Left, Top, Right, Bottom int32
}

type win32Handle struct {
	hwnd uintptr
}

// NewHandle wraps an HWND supplied by the host UI.
func NewHandle(hwnd uintptr) (Handle, error) {
	if hwnd == 0 {
		return nil, fmt.Errorf("nil window handle")
	}
	return &win32Handle{hwnd: hwnd}, nil
}

func (h *win32Handle) Origin() Origin { return OriginTopLeft }

func (h *win32Handle) Frame() (Geometry, error) {
	var r winRect
	ok, _, err := procGetWindowRect.Call(h.hwnd, uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return Geometry{}, fmt.Errorf("GetWindowRect: %v", err)
	}
	return Geometry{
		X:      float64(r.Left),
		Y:      float64(r.Top),
		Width:  float64(r.Right - r.Left),
		Height: float64(r.Bottom - r.Top),
	}, nil
}

func (h *win32Handle) SetFrame(g Geometry) error {
	ok, _, err := procSetWindowPos.Call(
		h.hwnd, 0,
		uintptr(int32(g.X)), uintptr(int32(g.Y)),
		uintptr(int32(g.Width)), uintptr(int32(g.Height)),
		swpNoZOrder|swpNoActivate,
	)
	if ok == 0 {
		return fmt.Errorf("SetWindowPos: %v", err)
	}
	return nil
}

func (h *win32Handle) Visible() (bool, error) {
	vis, _, _ := procIsWindowVisible.Call(h.hwnd)
	return vis != 0, nil
}

func (h *win32Handle) Show() error {
	procShowWindow.Call(h.hwnd, swShow)
	return nil
}

func (h *win32Handle) Hide() error {
	procShowWindow.Call(h.hwnd, swHide)
	return nil
}

func (h *win32Handle) Focused() (bool, error) {
	fg, _, _ := procGetForegroundWindow.Call()
	return fg == h.hwnd, nil
}

func (h *win32Handle) Focus() error {
	ok, _, err := procSetForegroundWindow.Call(h.hwnd)
	if ok == 0 {
		return fmt.Errorf("SetForegroundWindow: %v", err)
	}
	return nil
}

// ConfigureOverlay is a no-op on Windows; the overlay needs no special
// window behavior here.
func ConfigureOverlay(h Handle) {}

func (h *win32Handle) SetContentProtected(enabled bool) error {
	affinity := uintptr(wdaNone)
	if enabled {
		affinity = wdaExcludeFromCapture
	}
	ok, _, err := procSetWindowDisplayAffinity.Call(h.hwnd, affinity)
	if ok == 0 {
		return fmt.Errorf("SetWindowDisplayAffinity: %v", err)
	}
	return nil
}
