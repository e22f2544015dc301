package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the portfolio in the terminal",
	Long: `Opens a terminal view of the project grid. Enter opens a project, the
arrow keys step through its images, escape closes it and q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c := loadCatalog(context.Background(), cfg)
		return tui.Run(c, cfg.Title, defaultTheme(cfg))
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
