package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/notes"
)

var notesCmd = &cobra.Command{
	Use:   "notes [file]",
	Short: "Preview a markdown document in the browser",
	Long: `Serves a markdown file as an HTML page with tables, highlighted code
blocks and line breaks preserved. The file is re-read on every request.
Without an argument the configured notes_file is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNotes,
}

func init() {
	notesCmd.Flags().Int("port", 9090, "port to listen on")
	rootCmd.AddCommand(notesCmd)
}

func runNotes(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path = cfg.NotesFile
	}
	if path == "" {
		return errors.New("no notes file given and notes_file is not configured")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("notes file: %w", err)
	}

	port, _ := cmd.Flags().GetInt("port")
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           notes.Handler(path),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	fmt.Printf("Serving %s at http://localhost:%d\n", path, port)
	fmt.Println("Press Ctrl+C to stop.")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
