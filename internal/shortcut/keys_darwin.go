//go:build darwin

package shortcut

import "golang.design/x/hotkey"

// modifierMap resolves canonical modifier tokens on macOS.
// CommandOrControl and Super both land on Cmd, so spellings that mix the
// two collide at the Combo level before any OS registration is attempted.
var modifierMap = map[string]hotkey.Modifier{
	modCommandOrControl: hotkey.ModCmd,
	modCtrl:             hotkey.ModCtrl,
	modCmd:              hotkey.ModCmd,
	modSuper:            hotkey.ModCmd,
	modAlt:              hotkey.ModOption,
	modShift:            hotkey.ModShift,
}

// extraKeys are ANSI Carbon key codes with no cross-platform constant.
var extraKeys = map[string]hotkey.Key{
	"Equal":        hotkey.Key(0x18), // kVK_ANSI_Equal
	"Minus":        hotkey.Key(0x1B), // kVK_ANSI_Minus
	"BracketRight": hotkey.Key(0x1E), // kVK_ANSI_RightBracket
	"BracketLeft":  hotkey.Key(0x21), // kVK_ANSI_LeftBracket
	"Quote":        hotkey.Key(0x27), // kVK_ANSI_Quote
	"Semicolon":    hotkey.Key(0x29), // kVK_ANSI_Semicolon
	"Backslash":    hotkey.Key(0x2A), // kVK_ANSI_Backslash
	"Comma":        hotkey.Key(0x2B), // kVK_ANSI_Comma
	"Slash":        hotkey.Key(0x2C), // kVK_ANSI_Slash
	"Period":       hotkey.Key(0x2F), // kVK_ANSI_Period
	"Backquote":    hotkey.Key(0x32), // kVK_ANSI_Grave
}
