package shortcut

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lenslabs/lens-overlay/internal/config"
	"github.com/lenslabs/lens-overlay/internal/events"
)

// Action names one of the managed shortcuts.
type Action string

const (
	ActionToggle      Action = "toggle"
	ActionAsk         Action = "ask"
	ActionScreenShare Action = "screen_share"
)

// optionalActions are registered only while the overlay is visible, so
// their chords don't shadow other applications when the window is hidden.
// Toggle stays registered for the lifetime of the process.
var optionalActions = [...]Action{ActionAsk, ActionScreenShare}

// ConflictError reports two requested actions resolving to the same
// physical chord. Detected before any OS registration is attempted.
type ConflictError struct {
	Accelerator string
	Actions     [2]Action
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("shortcut conflict: %s and %s both use %s", e.Actions[0], e.Actions[1], e.Accelerator)
}

// ActionError is one failed OS registration.
type ActionError struct {
	Action Action
	Err    error
}

// RegistrationErrors collects every action that failed to register; the
// registry is left best-effort, with the remaining actions active.
type RegistrationErrors []ActionError

func (e RegistrationErrors) Error() string {
	parts := make([]string, len(e))
	for i, ae := range e {
		parts[i] = fmt.Sprintf("failed to register %s: %v", ae.Action, ae.Err)
	}
	return strings.Join(parts, ", ")
}

// RegistryConfig carries the registry's collaborators.
type RegistryConfig struct {
	Backend  Backend
	Store    *config.Store
	Bus      *events.Bus
	Logger   zerolog.Logger
	Bindings config.ShortcutsConfig
	// OnFire is invoked from the OS dispatch goroutine on every hotkey
	// press. It must only enqueue; the UI-facing event is emitted by
	// whoever drains the queue.
	OnFire func(Action)
}

// Registry owns the three managed shortcut bindings and their OS
// registrations. All methods are safe for use from a single command
// dispatcher; the internal lock only guards against the config watcher.
type Registry struct {
	mu         sync.Mutex
	backend    Backend
	store      *config.Store
	bus        *events.Bus
	log        zerolog.Logger
	onFire     func(Action)
	bindings   config.ShortcutsConfig
	active     map[Action]Accelerator
	optionalOn bool
}

func NewRegistry(cfg RegistryConfig) *Registry {
	return &Registry{
		backend:  cfg.Backend,
		store:    cfg.Store,
		bus:      cfg.Bus,
		log:      cfg.Logger,
		onFire:   cfg.OnFire,
		bindings: cfg.Bindings,
		active:   make(map[Action]Accelerator),
	}
}

// Start registers the configured bindings, best effort: a binding that
// fails to parse or register is logged and skipped, matching first-run
// behavior where a stale config must not prevent startup. When optional
// is true the window starts visible and ask/screen_share register too.
func (r *Registry) Start(optional bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.optionalOn = optional

	actions := []Action{ActionToggle}
	if optional {
		actions = append(actions, optionalActions[:]...)
	}
	for _, action := range actions {
		if err := r.registerLocked(action); err != nil {
			r.log.Warn().Err(err).Str("action", string(action)).Msg("Shortcut not registered")
		}
	}
}

// Get returns the current bindings.
func (r *Registry) Get() config.ShortcutsConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bindings
}

// Set atomically validates the new bindings, then swaps the OS
// registrations: every parse failure or conflict aborts with zero side
// effects; after that point old bindings are unregistered first so old
// and new are never active together. Registration failures are collected
// per action and the registry is left best-effort - the caller decides
// whether re-submitting the previous set is worth it. Persistence and the
// shortcuts-changed event happen only on full success.
func (r *Registry) Set(newBindings config.ShortcutsConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	parsed, err := parseBindings(newBindings)
	if err != nil {
		return err
	}
	if err := detectConflicts(parsed); err != nil {
		return err
	}

	for action := range r.active {
		r.unregisterLocked(action)
	}

	r.bindings = newBindings

	var regErrs RegistrationErrors
	for _, action := range managedActions(r.optionalOn) {
		if err := r.registerParsedLocked(action, parsed[action]); err != nil {
			regErrs = append(regErrs, ActionError{Action: action, Err: err})
		}
	}
	if len(regErrs) > 0 {
		return regErrs
	}

	if err := r.persistLocked(); err != nil {
		// Registrations already succeeded; the session keeps the new
		// bindings even if they won't survive a restart.
		r.log.Error().Err(err).Msg("Failed to persist shortcuts")
		return fmt.Errorf("shortcuts active but not saved: %w", err)
	}

	r.bus.Publish(events.ShortcutsChanged, nil)
	return nil
}

// EnableOptional registers ask and screen_share; called when the overlay
// becomes visible. Failures are logged, not returned: losing a secondary
// hotkey must not break the toggle flow.
func (r *Registry) EnableOptional() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.optionalOn {
		return
	}
	r.optionalOn = true
	for _, action := range optionalActions {
		if err := r.registerLocked(action); err != nil {
			r.log.Warn().Err(err).Str("action", string(action)).Msg("Optional shortcut not registered")
		}
	}
}

// DisableOptional unregisters ask and screen_share; called when the
// overlay is hidden.
func (r *Registry) DisableOptional() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.optionalOn {
		return
	}
	r.optionalOn = false
	for _, action := range optionalActions {
		r.unregisterLocked(action)
	}
}

// Close releases every active registration.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for action := range r.active {
		r.unregisterLocked(action)
	}
	return r.backend.Close()
}

func (r *Registry) accelerator(action Action) string {
	switch action {
	case ActionToggle:
		return r.bindings.Toggle
	case ActionAsk:
		return r.bindings.Ask
	default:
		return r.bindings.ScreenShare
	}
}

func (r *Registry) registerLocked(action Action) error {
	acc, err := Parse(r.accelerator(action))
	if err != nil {
		return err
	}
	return r.registerParsedLocked(action, acc)
}

func (r *Registry) registerParsedLocked(action Action, acc Accelerator) error {
	if _, ok := r.active[action]; ok {
		return nil
	}
	fire := func() {
		if r.onFire != nil {
			r.onFire(action)
		}
	}
	if err := r.backend.Register(acc, fire); err != nil {
		return err
	}
	r.active[action] = acc
	return nil
}

func (r *Registry) unregisterLocked(action Action) {
	acc, ok := r.active[action]
	if !ok {
		return
	}
	delete(r.active, action)
	if err := r.backend.Unregister(acc); err != nil {
		r.log.Warn().Err(err).Str("action", string(action)).Msg("Unregister failed")
	}
}

// persistLocked folds the bindings into the stored config, preserving
// unrelated fields.
func (r *Registry) persistLocked() error {
	cfg, err := r.store.Load()
	if err != nil {
		return err
	}
	cfg.Shortcuts = r.bindings
	return r.store.Save(cfg)
}

func managedActions(optional bool) []Action {
	actions := []Action{ActionToggle}
	if optional {
		actions = append(actions, optionalActions[:]...)
	}
	return actions
}

func parseBindings(b config.ShortcutsConfig) (map[Action]Accelerator, error) {
	parsed := make(map[Action]Accelerator, 3)
	for action, raw := range map[Action]string{
		ActionToggle:      b.Toggle,
		ActionAsk:         b.Ask,
		ActionScreenShare: b.ScreenShare,
	} {
		acc, err := Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", action, err)
		}
		parsed[action] = acc
	}
	return parsed, nil
}

// detectConflicts rejects any two actions resolving to the same physical
// chord. Resolution happens per platform, so aliases such as Super and
// CommandOrControl collide on macOS where both mean Cmd.
func detectConflicts(parsed map[Action]Accelerator) error {
	order := []Action{ActionToggle, ActionAsk, ActionScreenShare}
	combos := make(map[Action]Combo, len(order))
	for _, action := range order {
		combo, err := parsed[action].Combo()
		if err != nil {
			return fmt.Errorf("%s: %w", action, err)
		}
		combos[action] = combo
	}

	for i, a := range order {
		for _, b := range order[i+1:] {
			if combos[a] == combos[b] {
				return &ConflictError{
					Accelerator: parsed[b].String(),
					Actions:     [2]Action{a, b},
				}
			}
		}
	}
	return nil
}
