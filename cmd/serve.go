package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/db"
	"github.com/ziadkadry99/folio/internal/server"
	"github.com/ziadkadry99/folio/internal/theme"
	"github.com/ziadkadry99/folio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio with live gallery navigation",
	Long: `Starts the folio web app. Each visitor gets their own gallery state;
clicks and key presses are applied on the server and the modal is
re-rendered, over plain links or a websocket. Theme preferences are
kept in SQLite.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to server.port)")
	serveCmd.Flags().String("skin", "", "override skin (classic or modern)")
	serveCmd.Flags().String("db", "", "SQLite path for theme preferences (defaults to server.db_path)")
	serveCmd.Flags().Bool("allow-all", false, "allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applySkinFlag(cmd, cfg)
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	if path, _ := cmd.Flags().GetString("db"); path != "" {
		cfg.Server.DBPath = path
	}
	if allow, _ := cmd.Flags().GetBool("allow-all"); allow {
		cfg.Server.AllowAll = true
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(filepath.Dir(cfg.Server.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating database dir: %w", err)
	}
	database, err := db.Open(cfg.Server.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		AllowAll: cfg.Server.AllowAll,
	}, database)

	app := web.New(loadCatalog(ctx, cfg), renderer, theme.NewStore(srv.Database()), web.Options{
		Title:          cfg.Title,
		DefaultTheme:   defaultTheme(cfg),
		AssetsDir:      cfg.AssetsDir,
		NotesFile:      cfg.NotesFile,
		SessionTTL:     cfg.Server.SessionTTL,
		AllowedOrigins: srv.ServerConfig().Origins(),
	})
	app.RegisterRoutes(srv.Router())
	go app.Sessions().Run(ctx, time.Hour)

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(os.Stderr, "folio %s serving on http://localhost:%d\n", Version, cfg.Server.Port)
	fmt.Fprintf(os.Stderr, "  Skin: %s\n", renderer.Name())
	fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.Server.DBPath)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
