package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/vitrine/internal/museum"
	"github.com/five82/vitrine/internal/state"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(APIKeyEnv, "")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != museum.DefaultBaseURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, museum.DefaultBaseURL)
	}
	if cfg.PageSize != museum.DefaultPageSize {
		t.Fatalf("PageSize = %d, want %d", cfg.PageSize, museum.DefaultPageSize)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultRequestTimeout)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if p := cfg.Policy(); p.Loading != state.LoadingFlag || p.DiscardStale {
		t.Fatalf("Policy = %#v, want flag without discard", p)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(APIKeyEnv, "")

	path := writeConfig(t, `
api_url = "  http://localhost:8080  "
api_key = "  abc123 "
page_size = 25
request_timeout = "3s"
log_file = "  ~/logs/vitrine.log  "
loading_mode = "counter"
discard_stale = true
start_term = " medium "
start_value = " bronze "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://localhost:8080" || cfg.APIKey != "abc123" {
		t.Fatalf("APIURL/APIKey = %q/%q, want trimmed values", cfg.APIURL, cfg.APIKey)
	}
	if cfg.PageSize != 25 || cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("PageSize/RequestTimeout = %d/%v, want 25/3s", cfg.PageSize, cfg.RequestTimeout)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if p := cfg.Policy(); p.Loading != state.LoadingCounter || !p.DiscardStale {
		t.Fatalf("Policy = %#v, want counter with discard", p)
	}
	if cfg.StartTerm != "medium" || cfg.StartValue != "bronze" {
		t.Fatalf("Start = %q/%q, want medium/bronze", cfg.StartTerm, cfg.StartValue)
	}
}

func TestLoad_PageSizeIsClamped(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	cfg, err := Load(writeConfig(t, `page_size = 5000`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PageSize != maxPageSize {
		t.Fatalf("PageSize = %d, want %d", cfg.PageSize, maxPageSize)
	}
}

func TestLoad_EnvOverridesAPIKey(t *testing.T) {
	t.Setenv(APIKeyEnv, " from-env ")
	cfg, err := Load(writeConfig(t, `api_key = "from-file"`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "from-env" {
		t.Fatalf("APIKey = %q, want from-env", cfg.APIKey)
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	cases := map[string]string{
		"toml":    `api_url = [`,
		"timeout": `request_timeout = "soon"`,
		"mode":    `loading_mode = "semaphore"`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			if err == nil {
				t.Fatalf("Load returned nil error, want parse error")
			}
			if !strings.Contains(err.Error(), "parse config") {
				t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
