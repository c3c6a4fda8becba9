package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/vitrine/internal/config"
	"github.com/five82/vitrine/internal/museum"
	"github.com/five82/vitrine/internal/prefs"
	"github.com/five82/vitrine/internal/state"
	"github.com/five82/vitrine/internal/ui"
)

// Options configure the vitrine application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/vitrine/prefs.toml

	// StartTerm and StartValue override start_term/start_value from config.
	StartTerm  string
	StartValue string

	Debug bool
}

// Run boots the vitrine TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prefStore := prefs.NewStore(opts.PrefsPath)
	userPrefs := prefStore.Load()

	logger, closer, err := openLogger(cfg.LogFile, opts.Debug)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	client, err := museum.NewClient(museum.Options{
		BaseURL:  cfg.APIURL,
		APIKey:   cfg.APIKey,
		PageSize: cfg.PageSize,
		Timeout:  cfg.RequestTimeout,
	})
	if err != nil {
		return fmt.Errorf("init museum client: %w", err)
	}
	if cfg.APIKey == "" {
		logger.Warn("no api key configured; the catalog will likely reject requests", "env", config.APIKeyEnv)
	}

	store := state.NewStore(cfg.Policy())

	term, value := cfg.StartTerm, cfg.StartValue
	if strings.TrimSpace(opts.StartTerm) != "" || strings.TrimSpace(opts.StartValue) != "" {
		term, value = opts.StartTerm, opts.StartValue
	}

	logger.Info("vitrine starting",
		"api", cfg.APIURL,
		"page_size", cfg.PageSize,
		"loading_mode", cfg.LoadingMode,
		"discard_stale", cfg.DiscardStale,
		"theme", userPrefs.Theme,
	)

	err = ui.Run(ui.Options{
		Context:        ctx,
		Client:         client,
		Store:          store,
		Logger:         logger,
		Prefs:          prefStore,
		ThemeName:      userPrefs.Theme,
		RequestTimeout: cfg.RequestTimeout,
		StartTerm:      term,
		StartValue:     value,
	})
	logger.Info("vitrine stopped", "err", err)
	return err
}
