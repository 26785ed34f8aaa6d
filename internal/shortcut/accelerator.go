package shortcut

import (
	"fmt"
	"strings"
)

// Canonical modifier tokens, in their canonical order: the Ctrl/Cmd class
// first, then Alt, then Shift. The non-modifier key always comes last.
const (
	modCommandOrControl = "CommandOrControl"
	modCtrl             = "Ctrl"
	modCmd              = "Cmd"
	modSuper            = "Super"
	modAlt              = "Alt"
	modShift            = "Shift"
)

var modifierOrder = map[string]int{
	modCommandOrControl: 0,
	modCtrl:             1,
	modCmd:              2,
	modSuper:            3,
	modAlt:              4,
	modShift:            5,
}

// modifierAliases maps lowercase spellings to canonical modifier tokens.
var modifierAliases = map[string]string{
	"commandorcontrol": modCommandOrControl,
	"cmdorctrl":        modCommandOrControl,
	"ctrl":             modCtrl,
	"control":          modCtrl,
	"cmd":              modCmd,
	"command":          modCmd,
	"super":            modSuper,
	"win":              modSuper,
	"meta":             modSuper,
	"alt":              modAlt,
	"option":           modAlt,
	"shift":            modShift,
}

// keyAliases maps lowercase spellings to canonical key tokens. Canonical
// tokens double as map keys for the per-platform key-code tables.
var keyAliases = map[string]string{
	"space":     "Space",
	"enter":     "Enter",
	"return":    "Enter",
	"escape":    "Escape",
	"esc":       "Escape",
	"tab":       "Tab",
	"delete":    "Delete",
	"del":       "Delete",
	"left":      "Left",
	"right":     "Right",
	"up":        "Up",
	"down":      "Down",
	"backslash": "Backslash",
	"slash":     "Slash",
	"comma":     "Comma",
	"period":    "Period",
	"semicolon": "Semicolon",
	"quote":     "Quote",
	"minus":     "Minus",
	"equal":     "Equal",
	"plus":      "Equal",
	"`":         "Backquote",
	"backquote": "Backquote",
	"[":         "BracketLeft",
	"]":         "BracketRight",
	"-":         "Minus",
	"=":         "Equal",
	"\\":        "Backslash",
	"/":         "Slash",
	",":         "Comma",
	".":         "Period",
	";":         "Semicolon",
	"'":         "Quote",
}

// Accelerator is a parsed, normalised keyboard shortcut: zero or more
// modifiers in canonical order plus exactly one non-modifier key.
type Accelerator struct {
	Modifiers []string
	Key       string
}

// Parse validates and normalises a "+"-joined accelerator string such as
// "commandorcontrol+shift+l" into its canonical form
// ("CommandOrControl+Shift+L"). Tokens are case-insensitive.
func Parse(s string) (Accelerator, error) {
	var acc Accelerator

	if strings.TrimSpace(s) == "" {
		return acc, fmt.Errorf("empty accelerator")
	}

	seen := make(map[string]bool)
	for _, raw := range strings.Split(s, "+") {
		token := strings.ToLower(strings.TrimSpace(raw))
		if token == "" {
			return acc, fmt.Errorf("accelerator %q has an empty token", s)
		}

		if mod, ok := modifierAliases[token]; ok {
			if !seen[mod] {
				seen[mod] = true
				acc.Modifiers = append(acc.Modifiers, mod)
			}
			continue
		}

		key, err := canonicalKey(token)
		if err != nil {
			return Accelerator{}, fmt.Errorf("accelerator %q: %w", s, err)
		}
		if acc.Key != "" {
			return Accelerator{}, fmt.Errorf("accelerator %q has more than one key (%s, %s)", s, acc.Key, key)
		}
		acc.Key = key
	}

	if acc.Key == "" {
		return Accelerator{}, fmt.Errorf("accelerator %q has no non-modifier key", s)
	}

	sortModifiers(acc.Modifiers)
	return acc, nil
}

// String returns the canonical "+"-joined form.
func (a Accelerator) String() string {
	if len(a.Modifiers) == 0 {
		return a.Key
	}
	return strings.Join(a.Modifiers, "+") + "+" + a.Key
}

func canonicalKey(token string) (string, error) {
	if key, ok := keyAliases[token]; ok {
		return key, nil
	}

	// Single letters and digits.
	if len(token) == 1 {
		c := token[0]
		if c >= 'a' && c <= 'z' {
			return strings.ToUpper(token), nil
		}
		if c >= '0' && c <= '9' {
			return token, nil
		}
	}

	// Function keys F1..F12.
	if len(token) >= 2 && token[0] == 'f' {
		upper := strings.ToUpper(token)
		if _, ok := baseKeys[upper]; ok {
			return upper, nil
		}
	}

	return "", fmt.Errorf("unknown key %q", token)
}

// sortModifiers orders modifiers canonically: insertion sort, the slice
// holds at most a handful of entries.
func sortModifiers(mods []string) {
	for i := 1; i < len(mods); i++ {
		for j := i; j > 0 && modifierOrder[mods[j]] < modifierOrder[mods[j-1]]; j-- {
			mods[j], mods[j-1] = mods[j-1], mods[j]
		}
	}
}
