package shortcut

import (
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lenslabs/lens-overlay/internal/config"
	"github.com/lenslabs/lens-overlay/internal/events"
)

// fakeBackend records registrations keyed by canonical accelerator string.
type fakeBackend struct {
	mu         sync.Mutex
	registered map[string]func()
	failOn     map[string]error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		registered: make(map[string]func()),
		failOn:     make(map[string]error),
	}
}

func (b *fakeBackend) Register(acc Accelerator, fire func()) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failOn[acc.String()]; err != nil {
		return err
	}
	b.registered[acc.String()] = fire
	return nil
}

func (b *fakeBackend) Unregister(acc Accelerator) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.registered, acc.String())
	return nil
}

func (b *fakeBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.registered = make(map[string]func())
	return nil
}

func (b *fakeBackend) activeSet() map[string]bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]bool, len(b.registered))
	for k := range b.registered {
		out[k] = true
	}
	return out
}

func (b *fakeBackend) press(accel string) {
	b.mu.Lock()
	fire := b.registered[accel]
	b.mu.Unlock()
	if fire != nil {
		fire()
	}
}

func newTestRegistry(t *testing.T, backend Backend, onFire func(Action)) (*Registry, *config.Store, *events.Bus) {
	t.Helper()
	store := config.NewStoreAt(t.TempDir())
	bus := events.NewBus()
	t.Cleanup(bus.Close)
	reg := NewRegistry(RegistryConfig{
		Backend:  backend,
		Store:    store,
		Bus:      bus,
		Logger:   zerolog.Nop(),
		Bindings: config.DefaultShortcuts(),
		OnFire:   onFire,
	})
	return reg, store, bus
}

func TestStartRegistersAllWhenVisible(t *testing.T) {
	backend := newFakeBackend()
	reg, _, _ := newTestRegistry(t, backend, nil)

	reg.Start(true)

	active := backend.activeSet()
	for _, want := range []string{
		"CommandOrControl+Backslash",
		"CommandOrControl+Enter",
		"CommandOrControl+S",
	} {
		if !active[want] {
			t.Errorf("%s not registered after Start", want)
		}
	}
}

func TestStartHiddenRegistersOnlyToggle(t *testing.T) {
	backend := newFakeBackend()
	reg, _, _ := newTestRegistry(t, backend, nil)

	reg.Start(false)

	active := backend.activeSet()
	if len(active) != 1 || !active["CommandOrControl+Backslash"] {
		t.Errorf("active after hidden Start = %v, want only the toggle binding", active)
	}
}

func TestSetConflictFailsBeforeAnySideEffect(t *testing.T) {
	backend := newFakeBackend()
	reg, _, _ := newTestRegistry(t, backend, nil)
	reg.Start(true)
	before := backend.activeSet()

	err := reg.Set(config.ShortcutsConfig{
		Toggle:      "CommandOrControl+Shift+L",
		Ask:         "CommandOrControl+Shift+L",
		ScreenShare: "Alt+S",
	})

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("got %v, want ConflictError", err)
	}

	after := backend.activeSet()
	if len(after) != len(before) {
		t.Errorf("registrations changed on conflict: before %v, after %v", before, after)
	}
	for k := range before {
		if !after[k] {
			t.Errorf("previous binding %s lost on failed validation", k)
		}
	}
	if got := reg.Get(); got != config.DefaultShortcuts() {
		t.Errorf("bindings mutated on conflict: %+v", got)
	}
}

func TestSetConflictDetectsEquivalentSpellings(t *testing.T) {
	backend := newFakeBackend()
	reg, _, _ := newTestRegistry(t, backend, nil)
	reg.Start(true)

	err := reg.Set(config.ShortcutsConfig{
		Toggle:      "Ctrl+Shift+L",
		Ask:         "shift+control+l",
		ScreenShare: "Alt+S",
	})
	if err == nil {
		t.Fatal("equivalent spellings accepted")
	}
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("got %v, want ConflictError", err)
	}
}

func TestSetParseFailureIsFailFast(t *testing.T) {
	backend := newFakeBackend()
	reg, _, _ := newTestRegistry(t, backend, nil)
	reg.Start(true)
	before := backend.activeSet()

	err := reg.Set(config.ShortcutsConfig{
		Toggle:      "NotAShortcut+",
		Ask:         "Alt+A",
		ScreenShare: "Alt+S",
	})
	if err == nil {
		t.Fatal("malformed accelerator accepted")
	}

	after := backend.activeSet()
	for k := range before {
		if !after[k] {
			t.Errorf("previous binding %s lost on parse failure", k)
		}
	}
}

func TestSetFullSuccessSwapsRegistrations(t *testing.T) {
	backend := newFakeBackend()
	reg, store, bus := newTestRegistry(t, backend, nil)
	reg.Start(true)
	sub := bus.Subscribe()

	next := config.ShortcutsConfig{
		Toggle:      "Alt+T",
		Ask:         "Alt+A",
		ScreenShare: "Alt+S",
	}
	if err := reg.Set(next); err != nil {
		t.Fatalf("Set: %v", err)
	}

	active := backend.activeSet()
	if len(active) != 3 {
		t.Errorf("want exactly 3 registrations, got %v", active)
	}
	for _, want := range []string{"Alt+T", "Alt+A", "Alt+S"} {
		if !active[want] {
			t.Errorf("%s not registered", want)
		}
	}
	for _, stale := range []string{
		"CommandOrControl+Backslash",
		"CommandOrControl+Enter",
		"CommandOrControl+S",
	} {
		if active[stale] {
			t.Errorf("stale binding %s still registered", stale)
		}
	}

	// Persisted.
	saved, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if saved.Shortcuts != next {
		t.Errorf("persisted %+v, want %+v", saved.Shortcuts, next)
	}

	// Notified.
	select {
	case ev := <-sub:
		if ev.Name != events.ShortcutsChanged {
			t.Errorf("got event %q, want %q", ev.Name, events.ShortcutsChanged)
		}
	default:
		t.Error("shortcuts-changed not published")
	}
}

func TestSetPartialFailureIsBestEffort(t *testing.T) {
	backend := newFakeBackend()
	backend.failOn["Alt+A"] = errors.New("claimed by another application")
	reg, store, _ := newTestRegistry(t, backend, nil)
	reg.Start(true)

	err := reg.Set(config.ShortcutsConfig{
		Toggle:      "Alt+T",
		Ask:         "Alt+A",
		ScreenShare: "Alt+S",
	})

	var regErrs RegistrationErrors
	if !errors.As(err, &regErrs) {
		t.Fatalf("got %v, want RegistrationErrors", err)
	}
	if len(regErrs) != 1 || regErrs[0].Action != ActionAsk {
		t.Errorf("got failures %v, want exactly the ask action", regErrs)
	}

	// The actions that could register are active; nothing was persisted.
	active := backend.activeSet()
	if !active["Alt+T"] || !active["Alt+S"] {
		t.Errorf("successful registrations missing from best-effort state: %v", active)
	}
	if active["Alt+A"] {
		t.Error("failed registration reported active")
	}
	saved, _ := store.Load()
	if saved.Shortcuts == reg.Get() {
		t.Error("partial failure must not persist the new bindings")
	}
}

func TestOptionalToggleTracksVisibility(t *testing.T) {
	backend := newFakeBackend()
	reg, _, _ := newTestRegistry(t, backend, nil)
	reg.Start(false)

	reg.EnableOptional()
	if got := len(backend.activeSet()); got != 3 {
		t.Fatalf("after EnableOptional: %d registrations, want 3", got)
	}

	// Idempotent.
	reg.EnableOptional()
	if got := len(backend.activeSet()); got != 3 {
		t.Errorf("EnableOptional not idempotent: %d registrations", got)
	}

	reg.DisableOptional()
	active := backend.activeSet()
	if len(active) != 1 || !active["CommandOrControl+Backslash"] {
		t.Errorf("after DisableOptional: %v, want only toggle", active)
	}

	reg.DisableOptional()
	if got := len(backend.activeSet()); got != 1 {
		t.Errorf("DisableOptional not idempotent: %d registrations", got)
	}
}

func TestFireRoutesToAction(t *testing.T) {
	backend := newFakeBackend()
	fired := make(chan Action, 4)
	reg, _, _ := newTestRegistry(t, backend, func(a Action) { fired <- a })
	reg.Start(true)

	backend.press("CommandOrControl+Enter")

	select {
	case a := <-fired:
		if a != ActionAsk {
			t.Errorf("fired %s, want %s", a, ActionAsk)
		}
	default:
		t.Fatal("hotkey press did not reach OnFire")
	}
}

func TestCloseUnregistersEverything(t *testing.T) {
	backend := newFakeBackend()
	reg, _, _ := newTestRegistry(t, backend, nil)
	reg.Start(true)

	if err := reg.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := len(backend.activeSet()); got != 0 {
		t.Errorf("%d registrations left after Close", got)
	}
}
