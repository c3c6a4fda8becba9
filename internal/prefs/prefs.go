// Package prefs persists user preferences that change while vitrine runs.
// Preferences live in ~/.config/vitrine/prefs.toml, separate from config so
// that saving a theme never rewrites the user's config file.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/vitrine/prefs.toml"
	// DefaultTheme is used when no theme has been saved.
	DefaultTheme = "Nightfox"
)

// Store reads and writes preferences at a fixed path.
type Store struct {
	path string
}

// NewStore returns a Store for path; empty selects the default location.
func NewStore(path string) *Store {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return &Store{path: path}
}

// Path returns the configured (unexpanded) path.
func (s *Store) Path() string {
	return s.path
}

// Load reads preferences. Any problem reading or parsing the file yields the
// defaults; preferences are never fatal.
func (s *Store) Load() Prefs {
	p := Prefs{Theme: DefaultTheme}

	resolved, err := expandPath(s.path)
	if err != nil {
		return p
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return p
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{Theme: DefaultTheme}
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = DefaultTheme
	}
	return p
}

// Save writes p, creating parent directories as needed.
func (s *Store) Save(p Prefs) error {
	resolved, err := expandPath(s.path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
