package config

import "time"

// DefaultFile is the config file folio reads from the working directory.
const DefaultFile = ".folio.yml"

// Skins and Themes are the accepted values for skin and theme.
var (
	Skins  = []string{"classic", "modern"}
	Themes = []string{"dark", "light"}
)

// DefaultExcludes keep working files out of the copied assets.
var DefaultExcludes = []string{
	"drafts/**",
	"**/_*",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:        "Portfolio",
		Catalog:      "data/projects.json",
		FetchTimeout: 15 * time.Second,
		Skin:         "modern",
		Theme:        "dark",
		AssetsDir:    "assets",
		Exclude:      append([]string(nil), DefaultExcludes...),
		OutputDir:    "site",
		Server: ServerConfig{
			Port:       8080,
			DBPath:     ".folio/folio.db",
			SessionTTL: 24 * time.Hour,
		},
	}
}
