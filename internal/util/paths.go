package util

import (
	"os"
	"path/filepath"
	"strings"
)

// StateDir returns the per-user state directory for app ($XDG_STATE_HOME or ~/.local/state).
func StateDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "state", app)
}

// LogPath resolves a log file flag. A bare file name is placed in StateDir(app).
func LogPath(app, f string) string {
	f = ExpandHome(f)
	if f == "" || filepath.Base(f) != f {
		return f
	}
	return filepath.Join(StateDir(app), f)
}

// ExpandHome replaces a leading "~/" or any "$HOME" with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") && !strings.Contains(path, "$HOME") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		path = filepath.Join(home, path[2:])
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
