package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := NewStore("").Load()
	if p.Theme != DefaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, DefaultTheme)
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "vitrine")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prefs.toml"), []byte("theme = \"Slate\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if got := NewStore("").Load().Theme; got != "Slate" {
		t.Fatalf("Theme = %q, want Slate", got)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nested", "prefs.toml"))

	if err := s.Save(Prefs{Theme: "Kanagawa"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if got := s.Load().Theme; got != "Kanagawa" {
		t.Fatalf("Theme = %q, want Kanagawa", got)
	}
}

func TestLoad_BadContentFallsBackToDefault(t *testing.T) {
	cases := map[string]string{
		"empty theme":  "theme = \"\"\n",
		"invalid toml": "not valid toml {{{\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if got := NewStore(path).Load().Theme; got != DefaultTheme {
				t.Fatalf("Theme = %q, want %q", got, DefaultTheme)
			}
		})
	}
}
