package window

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/lenslabs/lens-overlay/internal/events"
)

// Controller mutates OS window state in response to explicit commands.
// Requests against a label with no attached window are silent no-ops, not
// errors: the window may be closed or not yet created. The controller
// keeps no geometry cache and performs no debouncing - rapid repeated
// calls are the caller's problem to rate-limit.
type Controller struct {
	mu      sync.Mutex
	windows map[string]Handle
	bus     *events.Bus
	log     zerolog.Logger
}

func NewController(bus *events.Bus, log zerolog.Logger) *Controller {
	return &Controller{
		windows: make(map[string]Handle),
		bus:     bus,
		log:     log,
	}
}

// Attach registers a window handle under a label ("main", "settings").
// The main window additionally gets the platform overlay treatment
// (joins all spaces, stays put across Mission Control on macOS).
func (c *Controller) Attach(label string, h Handle) {
	c.mu.Lock()
	c.windows[label] = h
	c.mu.Unlock()

	if label == Main {
		ConfigureOverlay(h)
	}
}

// Detach forgets a window; later requests against the label become no-ops.
func (c *Controller) Detach(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.windows, label)
}

func (c *Controller) handle(label string) Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.windows[label]
}

// Toggle flips the window's visibility and publishes window-shown or
// window-hidden. It reports the new visibility and whether a window was
// there to act on.
func (c *Controller) Toggle(label string) (visible bool, ok bool) {
	h := c.handle(label)
	if h == nil {
		return false, false
	}

	wasVisible, err := h.Visible()
	if err != nil {
		c.log.Warn().Err(err).Str("window", label).Msg("Visibility query failed")
		return false, false
	}

	if wasVisible {
		err = h.Hide()
	} else {
		err = h.Show()
	}
	if err != nil {
		c.log.Warn().Err(err).Str("window", label).Msg("Toggle failed")
		return wasVisible, false
	}

	if wasVisible {
		c.bus.Publish(events.WindowHidden, nil)
	} else {
		c.bus.Publish(events.WindowShown, nil)
	}
	return !wasVisible, true
}

// Resize applies a new size while keeping the window's top-left corner
// visually stationary. On platforms whose native origin is the bottom-left
// the vertical origin must be corrected by the height delta:
//
//	newY = oldY + oldHeight - newHeight
//
// On top-left-origin platforms the correction is the identity.
func (c *Controller) Resize(label string, width, height float64) {
	h := c.handle(label)
	if h == nil {
		return
	}

	frame, err := h.Frame()
	if err != nil {
		c.log.Warn().Err(err).Str("window", label).Msg("Frame query failed")
		return
	}

	next := Geometry{X: frame.X, Y: frame.Y, Width: width, Height: height}
	if h.Origin() == OriginBottomLeft {
		next.Y = frame.Y + frame.Height - height
	}

	if err := h.SetFrame(next); err != nil {
		c.log.Warn().Err(err).Str("window", label).Msg("Resize failed")
	}
}

// SetContentProtected excludes (or re-includes) the contents of every
// attached window from screen-capture output, not just the focused one.
func (c *Controller) SetContentProtected(enabled bool) {
	c.mu.Lock()
	handles := make(map[string]Handle, len(c.windows))
	for label, h := range c.windows {
		handles[label] = h
	}
	c.mu.Unlock()

	for label, h := range handles {
		if err := h.SetContentProtected(enabled); err != nil {
			c.log.Warn().Err(err).Str("window", label).Msg("Content protection failed")
		}
	}
}

// Focused reports whether the labelled window has keyboard focus.
func (c *Controller) Focused(label string) bool {
	h := c.handle(label)
	if h == nil {
		return false
	}
	focused, err := h.Focused()
	if err != nil {
		return false
	}
	return focused
}

// Focus gives the labelled window keyboard focus.
func (c *Controller) Focus(label string) {
	h := c.handle(label)
	if h == nil {
		return
	}
	if err := h.Focus(); err != nil {
		c.log.Warn().Err(err).Str("window", label).Msg("Focus failed")
	}
}
