package shortcut

import (
	"fmt"

	"golang.design/x/hotkey"
)

// baseKeys maps canonical key tokens to the hotkey key codes that
// golang.design/x/hotkey names identically on every supported platform.
// Punctuation keys have no shared constants and live in the per-platform
// extraKeys tables.
var baseKeys = map[string]hotkey.Key{
	"A": hotkey.KeyA, "B": hotkey.KeyB, "C": hotkey.KeyC, "D": hotkey.KeyD,
	"E": hotkey.KeyE, "F": hotkey.KeyF, "G": hotkey.KeyG, "H": hotkey.KeyH,
	"I": hotkey.KeyI, "J": hotkey.KeyJ, "K": hotkey.KeyK, "L": hotkey.KeyL,
	"M": hotkey.KeyM, "N": hotkey.KeyN, "O": hotkey.KeyO, "P": hotkey.KeyP,
	"Q": hotkey.KeyQ, "R": hotkey.KeyR, "S": hotkey.KeyS, "T": hotkey.KeyT,
	"U": hotkey.KeyU, "V": hotkey.KeyV, "W": hotkey.KeyW, "X": hotkey.KeyX,
	"Y": hotkey.KeyY, "Z": hotkey.KeyZ,

	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,

	"F1": hotkey.KeyF1, "F2": hotkey.KeyF2, "F3": hotkey.KeyF3,
	"F4": hotkey.KeyF4, "F5": hotkey.KeyF5, "F6": hotkey.KeyF6,
	"F7": hotkey.KeyF7, "F8": hotkey.KeyF8, "F9": hotkey.KeyF9,
	"F10": hotkey.KeyF10, "F11": hotkey.KeyF11, "F12": hotkey.KeyF12,

	"Space":  hotkey.KeySpace,
	"Enter":  hotkey.KeyReturn,
	"Escape": hotkey.KeyEscape,
	"Tab":    hotkey.KeyTab,
	"Delete": hotkey.KeyDelete,
	"Left":   hotkey.KeyLeft,
	"Right":  hotkey.KeyRight,
	"Up":     hotkey.KeyUp,
	"Down":   hotkey.KeyDown,
}

// Combo is the platform identity of an accelerator: the OR of its
// resolved modifier bits plus the key code. Spellings that land on the
// same physical chord (Super+S vs CommandOrControl+S on macOS) yield
// equal Combos, which is what conflict detection compares.
type Combo struct {
	mods uint32
	key  hotkey.Key
}

// Combo resolves the accelerator against the current platform.
func (a Accelerator) Combo() (Combo, error) {
	mods, key, err := a.platform()
	if err != nil {
		return Combo{}, err
	}
	var mask uint32
	for _, m := range mods {
		mask |= uint32(m)
	}
	return Combo{mods: mask, key: key}, nil
}

// platform resolves the accelerator to the modifier list and key code the
// OS backend registers. Keys that exist in the grammar but not on this
// platform surface here, as registration errors rather than parse errors.
func (a Accelerator) platform() ([]hotkey.Modifier, hotkey.Key, error) {
	mods := make([]hotkey.Modifier, 0, len(a.Modifiers))
	seen := make(map[hotkey.Modifier]bool)
	for _, token := range a.Modifiers {
		m, ok := modifierMap[token]
		if !ok {
			return nil, 0, fmt.Errorf("modifier %q is not available on this platform", token)
		}
		// Aliases may resolve to the same platform modifier.
		if !seen[m] {
			seen[m] = true
			mods = append(mods, m)
		}
	}

	key, ok := baseKeys[a.Key]
	if !ok {
		key, ok = extraKeys[a.Key]
	}
	if !ok {
		return nil, 0, fmt.Errorf("key %q is not available on this platform", a.Key)
	}
	return mods, key, nil
}
