package store

import "github.com/primespiral/spiral/spiral"

// Preferences is what the viewer remembers between sessions. Window
// geometry is deliberately absent.
type Preferences struct {
	Spiral           spiral.Settings `yaml:"spiral"`
	SidebarCollapsed bool            `yaml:"sidebar_collapsed"`
}

// DefaultPreferences is used when nothing has been saved yet.
func DefaultPreferences() Preferences {
	return Preferences{Spiral: spiral.DefaultSettings()}
}

// Store loads and saves preferences.
type Store[P any] interface {
	Load() (P, error)
	Save(P) error
}
