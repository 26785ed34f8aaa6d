package events

import "sync"

// Event names published to the UI layer.
const (
	ToggleWindowTriggered = "toggle-window-triggered"
	AskTriggered          = "ask-triggered" // payload: bool (forced focus)
	ScreenShareTriggered  = "screen-share-triggered"
	ShortcutsChanged      = "shortcuts-changed"
	WindowShown           = "window-shown"
	WindowHidden          = "window-hidden"
)

// Event is a named notification with an optional payload.
type Event struct {
	Name    string
	Payload any
}

// Bus fans events out to subscribers. Publish never blocks: a subscriber
// that falls behind its channel buffer loses events rather than stalling
// the publisher (publishers include the OS hotkey-dispatch thread).
type Bus struct {
	mu     sync.RWMutex
	subs   []chan Event
	closed bool
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a new subscriber channel. The channel is closed
// when the bus is closed.
func (b *Bus) Subscribe() <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, 16)
	if b.closed {
		close(ch)
		return ch
	}
	b.subs = append(b.subs, ch)
	return ch
}

// Publish delivers the event to every subscriber without blocking.
func (b *Bus) Publish(name string, payload any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}
	ev := Event{Name: name, Payload: payload}
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Close closes all subscriber channels. Publish becomes a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
