// Package app exposes the command surface the host UI drives: capture a
// frame, resize or toggle the overlay window, change a shortcut. All
// commands are synchronous; hotkey fires arrive asynchronously from the
// OS and are drained by a single goroutine that turns them into UI
// events.
package app

import (
	"context"
	"encoding/base64"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lenslabs/lens-overlay/internal/capture"
	"github.com/lenslabs/lens-overlay/internal/config"
	"github.com/lenslabs/lens-overlay/internal/events"
	"github.com/lenslabs/lens-overlay/internal/shortcut"
	"github.com/lenslabs/lens-overlay/internal/window"
)

// Config carries the app's collaborators.
type Config struct {
	Provider capture.Provider
	Windows  *window.Controller
	Bus      *events.Bus
	Logger   zerolog.Logger
}

type App struct {
	provider capture.Provider
	windows  *window.Controller
	registry *shortcut.Registry
	bus      *events.Bus
	log      zerolog.Logger

	// fired buffers hotkey presses between the OS dispatch goroutine
	// and the Run loop; presses beyond the buffer are dropped rather
	// than blocking the dispatcher.
	fired chan shortcut.Action

	mu          sync.Mutex
	lastCapture string
}

func New(cfg Config) *App {
	return &App{
		provider: cfg.Provider,
		windows:  cfg.Windows,
		bus:      cfg.Bus,
		log:      cfg.Logger,
		fired:    make(chan shortcut.Action, 8),
	}
}

// BindRegistry attaches the shortcut registry. Separate from New because
// the registry's OnFire callback points back at this app.
func (a *App) BindRegistry(r *shortcut.Registry) {
	a.registry = r
}

// OnHotkey is the registry's fire callback. It only enqueues: no UI or
// window work may happen on the OS dispatch goroutine.
func (a *App) OnHotkey(action shortcut.Action) {
	select {
	case a.fired <- action:
	default:
	}
}

// Run drains hotkey fires and publishes the corresponding UI events.
// It blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case action := <-a.fired:
			a.handleAction(action)
		}
	}
}

func (a *App) handleAction(action shortcut.Action) {
	switch action {
	case shortcut.ActionToggle:
		a.bus.Publish(events.ToggleWindowTriggered, nil)
	case shortcut.ActionAsk:
		// Only registered while the overlay is visible. The payload
		// tells the UI whether focus had to be forced onto the window.
		wasFocused := a.windows.Focused(window.Main)
		a.windows.Focus(window.Main)
		a.bus.Publish(events.AskTriggered, !wasFocused)
	case shortcut.ActionScreenShare:
		a.bus.Publish(events.ScreenShareTriggered, nil)
	}
}

// CaptureScreen captures the primary display and returns it as a base64
// PNG string, ready for transport to the AI provider.
func (a *App) CaptureScreen() (string, error) {
	res, err := a.provider.Capture()
	if err != nil {
		a.log.Error().Err(err).Msg("Screen capture failed")
		return "", err
	}

	encoded := base64.StdEncoding.EncodeToString(res.PNG)
	a.mu.Lock()
	a.lastCapture = encoded
	a.mu.Unlock()

	a.log.Debug().Int("width", res.Width).Int("height", res.Height).Int("bytes", len(res.PNG)).Msg("Captured screen")
	return encoded, nil
}

// LastCapture returns the most recent capture as base64, or "" if none.
func (a *App) LastCapture() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastCapture
}

// ToggleWindow flips the overlay's visibility and keeps the conditional
// shortcuts in step: ask and screen_share are only registered while the
// overlay is visible. No debouncing happens here; rapid repeated calls
// are the caller's responsibility.
func (a *App) ToggleWindow() {
	visible, ok := a.windows.Toggle(window.Main)
	if !ok {
		return
	}
	if visible {
		a.registry.EnableOptional()
	} else {
		a.registry.DisableOptional()
	}
}

// ResizeWindow applies a new logical size to the overlay, anchored at its
// top-left corner.
func (a *App) ResizeWindow(width, height float64) {
	a.windows.Resize(window.Main, width, height)
}

// SetContentProtected excludes every application window from screen
// capture output, or re-includes them.
func (a *App) SetContentProtected(enabled bool) {
	a.windows.SetContentProtected(enabled)
}

// GetShortcuts returns the current bindings.
func (a *App) GetShortcuts() config.ShortcutsConfig {
	return a.registry.Get()
}

// SetShortcuts validates, applies and persists a new binding set. See
// shortcut.Registry.Set for the atomicity contract.
func (a *App) SetShortcuts(bindings config.ShortcutsConfig) error {
	return a.registry.Set(bindings)
}

// ApplyConfig reacts to an externally edited config file: shortcut
// changes are re-registered as if set through the UI.
func (a *App) ApplyConfig(cfg *config.Config) {
	if cfg.Shortcuts == a.registry.Get() {
		return
	}
	a.log.Info().Msg("Config file changed on disk, re-registering shortcuts")
	if err := a.registry.Set(cfg.Shortcuts); err != nil {
		a.log.Warn().Err(err).Msg("Edited shortcuts could not be applied")
	}
}
