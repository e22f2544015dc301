package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectCatalog looks for a project list in the usual places.
func detectCatalog() string {
	for _, p := range []string{"data/projects.json", "projects.json"} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return DefaultConfig().Catalog
}

// RunWizard asks for the main settings and saves them to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your portfolio.")
	fmt.Println()

	cfg := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Title = title

	catalogPrompt := promptui.Prompt{
		Label:   "Project list (JSON file or URL)",
		Default: detectCatalog(),
	}
	if cfg.Catalog, err = catalogPrompt.Run(); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	skinPrompt := promptui.Select{
		Label: "Select skin",
		Items: []string{
			"modern  - project cards with an info panel",
			"classic - captioned grid with a split modal",
		},
	}
	skinIdx, _, err := skinPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("skin selection: %w", err)
	}
	cfg.Skin = []string{"modern", "classic"}[skinIdx]

	themePrompt := promptui.Select{
		Label: "Default theme",
		Items: Themes,
	}
	if _, cfg.Theme, err = themePrompt.Run(); err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}

	assetsPrompt := promptui.Prompt{
		Label:   "Assets directory",
		Default: cfg.AssetsDir,
	}
	if cfg.AssetsDir, err = assetsPrompt.Run(); err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}

	excludePrompt := promptui.Prompt{
		Label:   "Extra asset exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if extra := splitAndTrim(excludeStr); len(extra) > 0 {
		cfg.Exclude = append(append([]string{}, DefaultExcludes...), extra...)
	}

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static site",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
