//go:build linux

package shortcut

import "golang.design/x/hotkey"

// modifierMap resolves canonical modifier tokens on X11.
// Alt is Mod1, Super/Win is Mod4; CommandOrControl is Ctrl here.
var modifierMap = map[string]hotkey.Modifier{
	modCommandOrControl: hotkey.ModCtrl,
	modCtrl:             hotkey.ModCtrl,
	modCmd:              hotkey.Mod4,
	modSuper:            hotkey.Mod4,
	modAlt:              hotkey.Mod1,
	modShift:            hotkey.ModShift,
}

// extraKeys are X11 keysyms with no cross-platform constant.
var extraKeys = map[string]hotkey.Key{
	"Quote":        hotkey.Key(0x0027), // XK_apostrophe
	"Comma":        hotkey.Key(0x002C), // XK_comma
	"Minus":        hotkey.Key(0x002D), // XK_minus
	"Period":       hotkey.Key(0x002E), // XK_period
	"Slash":        hotkey.Key(0x002F), // XK_slash
	"Semicolon":    hotkey.Key(0x003B), // XK_semicolon
	"Equal":        hotkey.Key(0x003D), // XK_equal
	"BracketLeft":  hotkey.Key(0x005B), // XK_bracketleft
	"Backslash":    hotkey.Key(0x005C), // XK_backslash
	"BracketRight": hotkey.Key(0x005D), // XK_bracketright
	"Backquote":    hotkey.Key(0x0060), // XK_grave
}
