package store

import (
	"os"
	"path/filepath"

	"github.com/primespiral/spiral/constant"
)

// StateDir is where preferences live: $XDG_STATE_HOME/spiral, falling back
// to ~/.local/state/spiral.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, constant.ProjectName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", constant.ProjectName)
	}
	return filepath.Join(os.TempDir(), constant.ProjectName)
}

// LoadPreferences reads preferences from s, falling back to defaults when
// nothing is stored, and repairs invalid spiral settings.
func LoadPreferences(s Store[Preferences]) (Preferences, error) {
	prefs, err := s.Load()
	if err != nil {
		return DefaultPreferences(), err
	}
	if prefs == (Preferences{}) {
		return DefaultPreferences(), nil
	}
	prefs.Spiral = prefs.Spiral.Validate()
	return prefs, nil
}
