package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/vitrine/internal/museum"
	"github.com/five82/vitrine/internal/state"
)

// Config captures vitrine's runtime settings.
type Config struct {
	APIURL         string
	APIKey         string
	PageSize       int
	RequestTimeout time.Duration
	LogFile        string
	LoadingMode    state.LoadingMode
	DiscardStale   bool
	StartTerm      string
	StartValue     string
}

const (
	defaultConfigPath     = "~/.config/vitrine/config.toml"
	defaultLogFile        = "~/.local/state/vitrine/vitrine.log"
	defaultRequestTimeout = 10 * time.Second
	maxPageSize           = 100

	// APIKeyEnv overrides api_key from the file when set.
	APIKeyEnv = "VITRINE_API_KEY"
)

// Policy returns the store policy described by the config.
func (c Config) Policy() state.Policy {
	return state.Policy{Loading: c.LoadingMode, DiscardStale: c.DiscardStale}
}

// Load locates and parses the config file, falling back to defaults when it
// is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnv()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL         string `toml:"api_url"`
		APIKey         string `toml:"api_key"`
		PageSize       int    `toml:"page_size"`
		RequestTimeout string `toml:"request_timeout"`
		LogFile        string `toml:"log_file"`
		LoadingMode    string `toml:"loading_mode"`
		DiscardStale   bool   `toml:"discard_stale"`
		StartTerm      string `toml:"start_term"`
		StartValue     string `toml:"start_value"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	cfg.APIKey = strings.TrimSpace(raw.APIKey)
	if raw.PageSize > 0 {
		cfg.PageSize = min(raw.PageSize, maxPageSize)
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("parse config: invalid request_timeout %q", v)
		}
		cfg.RequestTimeout = d
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	mode, err := state.ParseLoadingMode(raw.LoadingMode)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.LoadingMode = mode
	cfg.DiscardStale = raw.DiscardStale
	cfg.StartTerm = strings.TrimSpace(raw.StartTerm)
	cfg.StartValue = strings.TrimSpace(raw.StartValue)

	cfg.applyEnv()
	return cfg, nil
}

func defaults() Config {
	return Config{
		APIURL:         museum.DefaultBaseURL,
		PageSize:       museum.DefaultPageSize,
		RequestTimeout: defaultRequestTimeout,
		LogFile:        mustExpand(defaultLogFile),
		LoadingMode:    state.LoadingFlag,
	}
}

func (c *Config) applyEnv() {
	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		c.APIKey = key
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
