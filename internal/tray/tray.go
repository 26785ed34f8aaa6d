// Package tray renders the system tray menu. It is a thin shell over the
// app's command surface; everything it does can also be done from the
// overlay UI or a shortcut.
package tray

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/getlantern/systray"
	"github.com/rs/zerolog"

	"github.com/lenslabs/lens-overlay/internal/app"
	"github.com/lenslabs/lens-overlay/internal/events"
	"github.com/lenslabs/lens-overlay/internal/logging"
)

type UI struct {
	app     *app.App
	bus     *events.Bus
	version string
	commit  string
	log     zerolog.Logger
	onQuit  func()

	// Menu items
	mToggle  *systray.MenuItem
	mProtect *systray.MenuItem
}

func New(application *app.App, bus *events.Bus, log zerolog.Logger, version, commit string, onQuit func()) *UI {
	return &UI{
		app:     application,
		bus:     bus,
		version: version,
		commit:  commit,
		log:     log,
		onQuit:  onQuit,
	}
}

// Run blocks inside the OS tray loop until Quit is chosen.
func (u *UI) Run() error {
	systray.Run(u.onReady, u.onExit)
	return nil
}

func (u *UI) onReady() {
	systray.SetTitle("🔍")
	u.refreshTooltip()

	u.mToggle = systray.AddMenuItem("Toggle Overlay", "Show or hide the overlay window")
	mCapture := systray.AddMenuItem("Copy Screen Capture", "Capture the screen and copy it as base64")
	systray.AddSeparator()

	protected := false
	u.mProtect = systray.AddMenuItemCheckbox("Hide From Screen Share", "Exclude windows from capture output", protected)

	systray.AddSeparator()
	mLogs := systray.AddMenuItem("Open Logs", "View application logs")
	mAbout := systray.AddMenuItem("About", "About Lens")
	mQuit := systray.AddMenuItem("Quit", "Exit application")

	go u.watchShortcuts()
	go u.handleEvents(mCapture, mLogs, mAbout, mQuit)
}

func (u *UI) handleEvents(mCapture, mLogs, mAbout, mQuit *systray.MenuItem) {
	protected := false
	for {
		select {
		case <-u.mToggle.ClickedCh:
			// Same path as the toggle hotkey: the host UI reacts to the
			// event and drives the window through the command surface.
			u.bus.Publish(events.ToggleWindowTriggered, nil)
		case <-mCapture.ClickedCh:
			u.copyCapture()
		case <-u.mProtect.ClickedCh:
			protected = !protected
			u.app.SetContentProtected(protected)
			if protected {
				u.mProtect.Check()
			} else {
				u.mProtect.Uncheck()
			}
			u.log.Info().Bool("protected", protected).Msg("Toggled content protection")
		case <-mLogs.ClickedCh:
			u.openLogs()
		case <-mAbout.ClickedCh:
			u.showAbout()
		case <-mQuit.ClickedCh:
			systray.Quit()
			return
		}
	}
}

// watchShortcuts keeps the tooltip in step with the active toggle binding.
func (u *UI) watchShortcuts() {
	for ev := range u.bus.Subscribe() {
		if ev.Name == events.ShortcutsChanged {
			u.refreshTooltip()
		}
	}
}

func (u *UI) refreshTooltip() {
	systray.SetTooltip(fmt.Sprintf("Lens App - %s to toggle", u.app.GetShortcuts().Toggle))
}

// copyCapture grabs a fresh frame and puts its base64 encoding on the
// clipboard, falling back to the last capture if the grab fails.
func (u *UI) copyCapture() {
	encoded, err := u.app.CaptureScreen()
	if err != nil {
		u.log.Warn().Err(err).Msg("Capture failed, using last capture")
		encoded = u.app.LastCapture()
	}
	if encoded == "" {
		return
	}
	if err := clipboard.WriteAll(encoded); err != nil {
		u.log.Error().Err(err).Msg("Clipboard write failed")
	}
}

func (u *UI) openLogs() {
	path := logging.Path()
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		u.log.Warn().Err(err).Str("path", path).Msg("Could not open log file")
	}
}

func (u *UI) showAbout() {
	fmt.Printf("Lens %s (%s)\nFloating AI overlay\n", u.version, u.commit)
}

func (u *UI) onExit() {
	if u.onQuit != nil {
		u.onQuit()
	}
}
