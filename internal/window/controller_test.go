package window

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/lenslabs/lens-overlay/internal/events"
)

type fakeHandle struct {
	origin    Origin
	frame     Geometry
	visible   bool
	focused   bool
	protected bool
}

func (f *fakeHandle) Origin() Origin                { return f.origin }
func (f *fakeHandle) Frame() (Geometry, error)      { return f.frame, nil }
func (f *fakeHandle) SetFrame(g Geometry) error     { f.frame = g; return nil }
func (f *fakeHandle) Visible() (bool, error)        { return f.visible, nil }
func (f *fakeHandle) Show() error                   { f.visible = true; return nil }
func (f *fakeHandle) Hide() error                   { f.visible = false; return nil }
func (f *fakeHandle) Focused() (bool, error)        { return f.focused, nil }
func (f *fakeHandle) Focus() error                  { f.focused = true; return nil }
func (f *fakeHandle) SetContentProtected(on bool) error {
	f.protected = on
	return nil
}

func newTestController(t *testing.T) (*Controller, *events.Bus) {
	t.Helper()
	bus := events.NewBus()
	t.Cleanup(bus.Close)
	return NewController(bus, zerolog.Nop()), bus
}

func TestResizeBottomLeftOriginPreservesTopLeft(t *testing.T) {
	c, _ := newTestController(t)
	h := &fakeHandle{
		origin: OriginBottomLeft,
		frame:  Geometry{X: 100, Y: 500, Width: 800, Height: 600},
	}
	c.Attach(Main, h)

	// Visual top edge in bottom-left coordinates is y + height.
	top := h.frame.Y + h.frame.Height

	c.Resize(Main, 545, 60)
	if h.frame.X != 100 {
		t.Errorf("x moved to %v on resize", h.frame.X)
	}
	if wantY := 500.0 + 600 - 60; h.frame.Y != wantY {
		t.Errorf("y = %v, want %v", h.frame.Y, wantY)
	}
	if got := h.frame.Y + h.frame.Height; got != top {
		t.Errorf("top edge moved: %v, want %v", got, top)
	}

	// Second resize: origin shifts only by the height delta.
	firstY := h.frame.Y
	c.Resize(Main, 545, 305)
	if h.frame.X != 100 {
		t.Errorf("x moved to %v on second resize", h.frame.X)
	}
	if wantY := firstY + 60 - 305; h.frame.Y != wantY {
		t.Errorf("second y = %v, want %v", h.frame.Y, wantY)
	}
	if got := h.frame.Y + h.frame.Height; got != top {
		t.Errorf("top edge moved after second resize: %v, want %v", got, top)
	}
}

func TestResizeTopLeftOriginIsIdentityOnPosition(t *testing.T) {
	c, _ := newTestController(t)
	h := &fakeHandle{
		origin: OriginTopLeft,
		frame:  Geometry{X: 40, Y: 80, Width: 700, Height: 500},
	}
	c.Attach(Main, h)

	c.Resize(Main, 545, 60)
	if h.frame.X != 40 || h.frame.Y != 80 {
		t.Errorf("position moved to (%v, %v), want (40, 80)", h.frame.X, h.frame.Y)
	}
	if h.frame.Width != 545 || h.frame.Height != 60 {
		t.Errorf("size = %vx%v, want 545x60", h.frame.Width, h.frame.Height)
	}
}

func TestToggleFlipsVisibilityAndPublishes(t *testing.T) {
	c, bus := newTestController(t)
	sub := bus.Subscribe()
	h := &fakeHandle{visible: false}
	c.Attach(Main, h)

	visible, ok := c.Toggle(Main)
	if !ok || !visible {
		t.Fatalf("Toggle = (%v, %v), want (true, true)", visible, ok)
	}
	if ev := <-sub; ev.Name != events.WindowShown {
		t.Errorf("got %q, want %q", ev.Name, events.WindowShown)
	}

	visible, ok = c.Toggle(Main)
	if !ok || visible {
		t.Fatalf("Toggle = (%v, %v), want (false, true)", visible, ok)
	}
	if ev := <-sub; ev.Name != events.WindowHidden {
		t.Errorf("got %q, want %q", ev.Name, events.WindowHidden)
	}
}

func TestRequestsAgainstMissingWindowAreNoOps(t *testing.T) {
	c, bus := newTestController(t)
	sub := bus.Subscribe()

	if _, ok := c.Toggle(Main); ok {
		t.Error("Toggle reported ok without a window")
	}
	c.Resize(Main, 545, 60)
	c.SetContentProtected(true)
	c.Focus(Main)
	if c.Focused(Main) {
		t.Error("missing window reported focused")
	}

	select {
	case ev := <-sub:
		t.Errorf("unexpected event %q for missing window", ev.Name)
	default:
	}
}

func TestSetContentProtectedAppliesToAllWindows(t *testing.T) {
	c, _ := newTestController(t)
	main := &fakeHandle{}
	settings := &fakeHandle{}
	c.Attach(Main, main)
	c.Attach(Settings, settings)

	c.SetContentProtected(true)
	if !main.protected || !settings.protected {
		t.Errorf("protection: main=%v settings=%v, want both true", main.protected, settings.protected)
	}

	// Idempotent: a second enable leaves the same state.
	c.SetContentProtected(true)
	if !main.protected || !settings.protected {
		t.Error("second enable changed protection state")
	}

	c.SetContentProtected(false)
	if main.protected || settings.protected {
		t.Error("disable did not clear protection on all windows")
	}
}

func TestDetachMakesWindowMissing(t *testing.T) {
	c, _ := newTestController(t)
	h := &fakeHandle{visible: true}
	c.Attach(Main, h)
	c.Detach(Main)

	if _, ok := c.Toggle(Main); ok {
		t.Error("detached window still toggled")
	}
	if h.visible != true {
		t.Error("detached window mutated")
	}
}
