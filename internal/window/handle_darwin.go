//go:build darwin

package window

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#import <Cocoa/Cocoa.h>

static void lensWindowFrame(void *w, double *x, double *y, double *width, double *height) {
	NSRect f = [(NSWindow *)w frame];
	*x = f.origin.x;
	*y = f.origin.y;
	*width = f.size.width;
	*height = f.size.height;
}

static void lensSetWindowFrame(void *w, double x, double y, double width, double height) {
	[(NSWindow *)w setFrame:NSMakeRect(x, y, width, height) display:YES animate:NO];
}

static int lensWindowVisible(void *w) {
	return [(NSWindow *)w isVisible] ? 1 : 0;
}

static void lensShowWindow(void *w) {
	[(NSWindow *)w makeKeyAndOrderFront:nil];
}

static void lensHideWindow(void *w) {
	[(NSWindow *)w orderOut:nil];
}

static int lensWindowFocused(void *w) {
	return [(NSWindow *)w isKeyWindow] ? 1 : 0;
}

static void lensFocusWindow(void *w) {
	[NSApp activateIgnoringOtherApps:YES];
	[(NSWindow *)w makeKeyAndOrderFront:nil];
}

static void lensSetContentProtected(void *w, int enabled) {
	[(NSWindow *)w setSharingType:(enabled ? NSWindowSharingNone : NSWindowSharingReadOnly)];
}

static void lensConfigureOverlay(void *w) {
	// Accessory policy: no Dock icon, no Cmd+Tab entry, focus still allowed.
	[NSApp setActivationPolicy:NSApplicationActivationPolicyAccessory];

	NSWindow *win = (NSWindow *)w;
	NSWindowCollectionBehavior behavior = [win collectionBehavior];
	behavior |= NSWindowCollectionBehaviorCanJoinAllSpaces;
	behavior |= NSWindowCollectionBehaviorStationary;
	behavior |= NSWindowCollectionBehaviorIgnoresCycle;
	[win setCollectionBehavior:behavior];
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// cocoaHandle wraps an NSWindow pointer supplied by the host UI.
// AppKit is not thread-safe: every method must run on the main thread.
type cocoaHandle struct {
	win unsafe.Pointer
}

// NewHandle wraps a raw NSWindow pointer.
func NewHandle(nsWindow uintptr) (Handle, error) {
	if nsWindow == 0 {
		return nil, fmt.Errorf("nil window handle")
	}
	return &cocoaHandle{win: unsafe.Pointer(nsWindow)}, nil
}

func (h *cocoaHandle) Origin() Origin { return OriginBottomLeft }

func (h *cocoaHandle) Frame() (Geometry, error) {
	var x, y, w, hh C.double
	C.lensWindowFrame(h.win, &x, &y, &w, &hh)
	return Geometry{X: float64(x), Y: float64(y), Width: float64(w), Height: float64(hh)}, nil
}

func (h *cocoaHandle) SetFrame(g Geometry) error {
	C.lensSetWindowFrame(h.win, C.double(g.X), C.double(g.Y), C.double(g.Width), C.double(g.Height))
	return nil
}

func (h *cocoaHandle) Visible() (bool, error) {
	return C.lensWindowVisible(h.win) == 1, nil
}

func (h *cocoaHandle) Show() error {
	C.lensShowWindow(h.win)
	return nil
}

func (h *cocoaHandle) Hide() error {
	C.lensHideWindow(h.win)
	return nil
}

func (h *cocoaHandle) Focused() (bool, error) {
	return C.lensWindowFocused(h.win) == 1, nil
}

func (h *cocoaHandle) Focus() error {
	C.lensFocusWindow(h.win)
	return nil
}

func (h *cocoaHandle) SetContentProtected(enabled bool) error {
	flag := C.int(0)
	if enabled {
		flag = 1
	}
	C.lensSetContentProtected(h.win, flag)
	return nil
}

// ConfigureOverlay applies the overlay window behavior: the app becomes a
// Dock-less accessory and the window joins all Spaces, stays put during
// Mission Control and steps out of the window cycle.
func ConfigureOverlay(h Handle) {
	if ch, ok := h.(*cocoaHandle); ok {
		C.lensConfigureOverlay(ch.win)
	}
}
