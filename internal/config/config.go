package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
)

// Env vars honoured for dev overrides, loadable from a .env file next to
// the executable.
const (
	ConfigDirEnvVar = "LENS_CONFIG_DIR"
	LogLevelEnvVar  = "LENS_LOG_LEVEL"
)

// ShortcutsConfig holds the accelerator string for each managed action.
type ShortcutsConfig struct {
	Toggle      string `json:"toggle"`
	Ask         string `json:"ask"`
	ScreenShare string `json:"screen_share"`
}

// Config is the durable application configuration.
type Config struct {
	Shortcuts ShortcutsConfig `json:"shortcuts"`
	LogLevel  string          `json:"log_level,omitempty"`
}

// DefaultShortcuts returns the out-of-the-box bindings.
// CommandOrControl resolves to Cmd on macOS and Ctrl elsewhere.
func DefaultShortcuts() ShortcutsConfig {
	return ShortcutsConfig{
		Toggle:      "CommandOrControl+Backslash",
		Ask:         "CommandOrControl+Enter",
		ScreenShare: "CommandOrControl+S",
	}
}

func defaults() *Config {
	return &Config{Shortcuts: DefaultShortcuts()}
}

// Store reads and writes config.json in a fixed directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at the platform app-config directory,
// unless a .env override or LENS_CONFIG_DIR points elsewhere.
func NewStore() *Store {
	loadDotenv()
	if dir := strings.TrimSpace(os.Getenv(ConfigDirEnvVar)); dir != "" {
		return &Store{dir: dir}
	}
	return &Store{dir: platformConfigDir()}
}

// NewStoreAt returns a store rooted at an explicit directory.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the location of config.json for this store.
func (s *Store) Path() string {
	return filepath.Join(s.dir, "config.json")
}

// Load reads the config file. A missing file or directory is not an
// error: first run yields the defaults. A file that fails to parse also
// yields the defaults rather than an error, so a hand-corrupted config
// never prevents startup; the error return is reserved for real I/O
// failures (permission, disk).
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return defaults(), err
	}

	cfg := defaults()
	if err := json.Unmarshal(data, cfg); err != nil {
		return defaults(), nil
	}
	fillDefaults(cfg)
	return cfg, nil
}

// Save writes the config with stable formatting, creating the parent
// directory if needed. A failed save leaves the in-memory config intact;
// the caller decides how to warn the user.
func (s *Store) Save(cfg *Config) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path(), data, 0o644)
}

// fillDefaults backfills fields absent from an older or hand-edited file.
func fillDefaults(cfg *Config) {
	def := DefaultShortcuts()
	if cfg.Shortcuts.Toggle == "" {
		cfg.Shortcuts.Toggle = def.Toggle
	}
	if cfg.Shortcuts.Ask == "" {
		cfg.Shortcuts.Ask = def.Ask
	}
	if cfg.Shortcuts.ScreenShare == "" {
		cfg.Shortcuts.ScreenShare = def.ScreenShare
	}
}

// loadDotenv loads a .env sitting next to the executable, if present.
func loadDotenv() {
	execPath, err := os.Executable()
	if err != nil {
		return
	}
	envPath := filepath.Join(filepath.Dir(execPath), ".env")
	if _, err := os.Stat(envPath); err == nil {
		_ = godotenv.Load(envPath)
	}
}

// platformConfigDir returns the per-OS app-config directory.
func platformConfigDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		base = os.Getenv("HOME") + "/Library/Application Support"
	case "windows":
		base = os.Getenv("APPDATA")
	default: // linux
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = xdg
		} else {
			base = os.Getenv("HOME") + "/.config"
		}
	}

	return filepath.Join(base, "lens-overlay")
}
