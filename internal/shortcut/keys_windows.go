//go:build windows

package shortcut

import "golang.design/x/hotkey"

// modifierMap resolves canonical modifier tokens on Windows.
// CommandOrControl is Ctrl here; Cmd/Super land on the Windows key.
var modifierMap = map[string]hotkey.Modifier{
	modCommandOrControl: hotkey.ModCtrl,
	modCtrl:             hotkey.ModCtrl,
	modCmd:              hotkey.ModWin,
	modSuper:            hotkey.ModWin,
	modAlt:              hotkey.ModAlt,
	modShift:            hotkey.ModShift,
}

// extraKeys are OEM virtual-key codes with no cross-platform constant.
var extraKeys = map[string]hotkey.Key{
	"Semicolon":    hotkey.Key(0xBA), // VK_OEM_1
	"Equal":        hotkey.Key(0xBB), // VK_OEM_PLUS
	"Comma":        hotkey.Key(0xBC), // VK_OEM_COMMA
	"Minus":        hotkey.Key(0xBD), // VK_OEM_MINUS
	"Period":       hotkey.Key(0xBE), // VK_OEM_PERIOD
	"Slash":        hotkey.Key(0xBF), // VK_OEM_2
	"Backquote":    hotkey.Key(0xC0), // VK_OEM_3
	"BracketLeft":  hotkey.Key(0xDB), // VK_OEM_4
	"Backslash":    hotkey.Key(0xDC), // VK_OEM_5
	"BracketRight": hotkey.Key(0xDD), // VK_OEM_6
	"Quote":        hotkey.Key(0xDE), // VK_OEM_7
}
