// Package web is the server-rendered portfolio. Each visitor has their own
// gallery state; every request or websocket message applies one transition
// and the page or modal is re-rendered from the resulting view.
package web

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/notes"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/theme"
)

// Options configures an App.
type Options struct {
	Title        string
	DefaultTheme theme.Mode
	// AssetsDir is served under /assets/. Empty disables the route.
	AssetsDir string
	// NotesFile is rendered at /notes. Empty disables the route.
	NotesFile string
	// SessionTTL is how long an idle visitor's gallery state is kept.
	SessionTTL time.Duration
	// RequestTimeout bounds page and API requests. The websocket is exempt.
	RequestTimeout time.Duration
	// AllowedOrigins lists origin patterns, in go-chi/cors form, that may
	// open the live websocket besides the page's own host. "*" allows any.
	AllowedOrigins []string
}

// App serves the portfolio pages, the gallery transitions, the JSON API and
// the live-control websocket.
type App struct {
	catalog  *catalog.Catalog
	renderer render.Renderer
	themes   theme.Store
	sessions *Sessions
	notes    *notes.Converter
	upgrader websocket.Upgrader
	opts     Options
}

// New creates an App. A nil themes store keeps preferences in memory.
func New(c *catalog.Catalog, r render.Renderer, themes theme.Store, opts Options) *App {
	if themes == nil {
		themes = theme.NewMemoryStore()
	}
	if opts.DefaultTheme == "" {
		opts.DefaultTheme = theme.Dark
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}
	a := &App{
		catalog:  c,
		renderer: r,
		themes:   themes,
		sessions: NewSessions(c, opts.SessionTTL),
		notes:    notes.NewConverter(),
		opts:     opts,
	}
	a.upgrader = websocket.Upgrader{CheckOrigin: a.checkOrigin}
	return a
}

// Sessions exposes the per-visitor gallery registry.
func (a *App) Sessions() *Sessions { return a.sessions }

// RegisterRoutes mounts all web routes onto the given router.
func (a *App) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(a.opts.RequestTimeout))

		r.Get("/", a.handleIndex)

		r.Route("/gallery", func(r chi.Router) {
			a.transition(r, "/open/{id}", openProject)
			a.transition(r, "/next", next)
			a.transition(r, "/prev", previous)
			a.transition(r, "/close", closeGallery)
			a.transition(r, "/image/{index}", setImage)
			a.transition(r, "/key/{key}", pressKey)
		})

		r.Get("/api/projects", a.handleProjects)
		r.Get("/api/gallery", a.handleGallery)

		r.Post("/theme/toggle", a.handleThemeToggle)

		r.Get("/static/style.css", staticFile("text/css; charset=utf-8", render.Stylesheet))
		r.Get("/static/live.js", staticFile("text/javascript; charset=utf-8", render.LiveScript))

		if a.opts.NotesFile != "" {
			r.Get("/notes", a.handleNotes)
		}
		if a.opts.AssetsDir != "" {
			r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(a.opts.AssetsDir))))
		}
	})

	r.Get("/ws/gallery", a.handleWebSocket)
}

func (a *App) handleNotes(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(a.opts.NotesFile); err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.notes.RenderFile(w, a.opts.NotesFile); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func staticFile(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write(body)
	}
}
