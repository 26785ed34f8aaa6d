package shortcut

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"
)

// Backend performs OS-level registration of accelerators. The production
// implementation wraps golang.design/x/hotkey; tests substitute a fake.
// On macOS Register and Unregister must be called from the main OS
// thread.
type Backend interface {
	// Register claims the accelerator system-wide and invokes fire on
	// every press. fire runs on the backend's dispatch goroutine and must
	// only enqueue work, never block.
	Register(acc Accelerator, fire func()) error
	// Unregister releases a previously registered accelerator.
	Unregister(acc Accelerator) error
	// Close releases every active registration.
	Close() error
}

type osRegistration struct {
	hk   *hotkey.Hotkey
	done chan struct{}
}

type osBackend struct {
	mu     sync.Mutex
	active map[Combo]*osRegistration
}

// NewBackend returns the OS-level hotkey backend.
func NewBackend() Backend {
	return &osBackend{active: make(map[Combo]*osRegistration)}
}

func (b *osBackend) Register(acc Accelerator, fire func()) error {
	mods, key, err := acc.platform()
	if err != nil {
		return err
	}
	combo := Combo{key: key}
	for _, m := range mods {
		combo.mods |= uint32(m)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.active[combo]; exists {
		return fmt.Errorf("%s is already registered", acc)
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register %s: %w", acc, err)
	}

	reg := &osRegistration{hk: hk, done: make(chan struct{})}
	b.active[combo] = reg

	go func() {
		for {
			select {
			case <-reg.done:
				return
			case _, ok := <-hk.Keydown():
				if !ok {
					return
				}
				fire()
			}
		}
	}()

	return nil
}

func (b *osBackend) Unregister(acc Accelerator) error {
	combo, err := acc.Combo()
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	reg, ok := b.active[combo]
	if !ok {
		return nil
	}
	delete(b.active, combo)
	close(reg.done)
	return reg.hk.Unregister()
}

func (b *osBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var firstErr error
	for combo, reg := range b.active {
		delete(b.active, combo)
		close(reg.done)
		if err := reg.hk.Unregister(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
