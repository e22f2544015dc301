package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Generate a static portfolio website",
	Long: `Generates a self-contained static HTML site: the project grid, one page
per gallery state, the stylesheet and script, the project data and the
copied image assets.`,
	RunE: runSite,
}

func init() {
	siteCmd.Flags().String("output", "", "override output directory")
	siteCmd.Flags().String("skin", "", "override skin (classic or modern)")
	siteCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	siteCmd.Flags().Int("port", 8080, "port for the local server")
	siteCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applySkinFlag(cmd, cfg)
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator := &site.Generator{
		Catalog:   loadCatalog(ctx, cfg),
		Renderer:  renderer,
		OutputDir: cfg.OutputDir,
		Title:     cfg.Title,
		Theme:     defaultTheme(cfg),
		Assets:    assetsConfig(cfg),
		NotesFile: cfg.NotesFile,
		Reporter:  progress.NewReporter(),
	}
	pageCount, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	fmt.Printf("Static site generated: %s (%d pages)\n", cfg.OutputDir, pageCount)

	if serve, _ := cmd.Flags().GetBool("serve"); serve {
		port, _ := cmd.Flags().GetInt("port")
		openBrowser, _ := cmd.Flags().GetBool("open")
		if err := site.Serve(ctx, cfg.OutputDir, port, openBrowser); err != nil {
			return fmt.Errorf("serving site: %w", err)
		}
	}
	return nil
}
