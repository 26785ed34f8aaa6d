package logging

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

// New creates a logger writing to the console and the platform log file
// at the default info level.
func New() zerolog.Logger {
	return NewWithLevel("info")
}

// NewWithLevel creates a logger at the given level ("debug", "info", ...).
// Unknown levels fall back to info. If the log file cannot be opened the
// logger degrades to console-only rather than failing startup.
func NewWithLevel(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	var w zerolog.LevelWriter = zerolog.MultiLevelWriter(console)
	logPath := getLogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err == nil {
		if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			w = zerolog.MultiLevelWriter(console, f)
		}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Path returns the platform-specific log file location.
func Path() string {
	return getLogPath()
}

// getLogPath returns the platform-specific log file path.
func getLogPath() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		base = os.Getenv("HOME") + "/Library/Logs"
	case "windows":
		base = os.Getenv("LOCALAPPDATA")
	default:
		if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
			base = xdg
		} else {
			base = os.Getenv("HOME") + "/.local/state"
		}
	}

	return filepath.Join(base, "lens-overlay", "lens-overlay.log")
}
