package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/assets"
	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/theme"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// applySkinFlag lets a command's --skin flag override the configured skin.
func applySkinFlag(cmd *cobra.Command, cfg *config.Config) {
	if skin, _ := cmd.Flags().GetString("skin"); skin != "" {
		cfg.Skin = skin
	}
}

// loadCatalog loads the project list. A catalog that cannot be loaded is
// logged and replaced by an empty one; the portfolio still renders.
func loadCatalog(ctx context.Context, cfg *config.Config) *catalog.Catalog {
	if cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.FetchTimeout)
		defer cancel()
	}
	c, err := catalog.Load(ctx, cfg.Catalog)
	if err != nil {
		log.Printf("Warning: could not load projects from %s: %v", cfg.Catalog, err)
		return c
	}
	if verbose {
		log.Printf("Loaded %d projects from %s", c.Len(), cfg.Catalog)
	}
	return c
}

func newRenderer(cfg *config.Config) (render.Renderer, error) {
	return render.New(cfg.Skin)
}

func defaultTheme(cfg *config.Config) theme.Mode {
	m, ok := theme.Parse(cfg.Theme)
	if !ok {
		return theme.Dark
	}
	return m
}

func assetsConfig(cfg *config.Config) assets.Config {
	var include []string
	if len(cfg.Include) > 0 {
		include = cfg.Include
	}
	return assets.Config{
		Root:    cfg.AssetsDir,
		Include: include,
		Exclude: cfg.Exclude,
	}
}
