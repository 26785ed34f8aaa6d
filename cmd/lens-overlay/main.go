package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lenslabs/lens-overlay/internal/app"
	"github.com/lenslabs/lens-overlay/internal/capture"
	"github.com/lenslabs/lens-overlay/internal/config"
	"github.com/lenslabs/lens-overlay/internal/events"
	"github.com/lenslabs/lens-overlay/internal/logging"
	"github.com/lenslabs/lens-overlay/internal/permissions"
	"github.com/lenslabs/lens-overlay/internal/shortcut"
	"github.com/lenslabs/lens-overlay/internal/tray"
	"github.com/lenslabs/lens-overlay/internal/window"
)

var (
	// Version is set via ldflags at build time
	Version = "dev"
	// Commit is set via ldflags at build time
	Commit = "unknown"
)

// The systray package locks the main goroutine to the main OS thread in
// its init, so everything below up to trayUI.Run - including hotkey
// registration, which macOS requires on the main thread - executes
// there. trayUI.Run must stay the last call: the Cocoa status-item loop
// takes over the main thread and blocks until Quit.
func main() {
	store := config.NewStore()
	cfg, err := store.Load()
	if err != nil {
		// Load already fell back to defaults; only real I/O failures
		// land here and they should not prevent startup.
		bootLog := logging.New()
		bootLog.Warn().Err(err).Msg("Config unreadable, using defaults")
	}

	log := logging.NewWithLevel(cfg.LogLevel)

	// Screen-recording approval on macOS. Not fatal: the overlay and
	// shortcuts still work, captures just fail until the user grants it.
	if err := permissions.EnsurePermissions(); err != nil {
		log.Warn().Err(err).Msg("Screen capture unavailable")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := events.NewBus()
	defer bus.Close()

	windows := window.NewController(bus, log)

	application := app.New(app.Config{
		Provider: capture.New(),
		Windows:  windows,
		Bus:      bus,
		Logger:   log,
	})

	registry := shortcut.NewRegistry(shortcut.RegistryConfig{
		Backend:  shortcut.NewBackend(),
		Store:    store,
		Bus:      bus,
		Logger:   log,
		Bindings: cfg.Shortcuts,
		OnFire:   application.OnHotkey,
	})
	application.BindRegistry(registry)
	defer registry.Close()

	// The overlay window starts hidden; only toggle is live until the
	// first show.
	registry.Start(false)

	go application.Run(ctx)

	// Re-apply shortcuts when the config file is edited on disk.
	if err := store.Watch(ctx, application.ApplyConfig); err != nil {
		log.Warn().Err(err).Msg("Config file watch unavailable")
	}

	log.Info().Str("version", Version).Str("commit", Commit).Msg("Lens starting")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("Shutting down...")
		cancel()
		if err := registry.Close(); err != nil {
			log.Error().Err(err).Msg("Shutdown error")
		}
		os.Exit(0)
	}()

	trayUI := tray.New(application, bus, log, Version, Commit, cancel)
	if err := trayUI.Run(); err != nil {
		log.Fatal().Err(err).Msg("Tray error")
	}
}
