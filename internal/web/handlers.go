package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/gallery"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/theme"
)

// fragmentType asks a transition route for the modal HTML instead of a
// redirect.
const fragmentType = "text/html-fragment"

// clientHintHeader carries the browser's prefers-color-scheme.
const clientHintHeader = "Sec-CH-Prefers-Color-Scheme"

var errBadIndex = errors.New("image index must be an integer")

// transitionFunc applies one gallery transition taken from the request.
type transitionFunc func(r *http.Request, g *gallery.Gallery) error

// pathParam returns a route parameter decoded once. chi matches on RawPath
// when the request path carries escapes such as %2F, and then hands back
// the still-escaped segment.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v
	}
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

func openProject(r *http.Request, g *gallery.Gallery) error {
	return g.Open(pathParam(r, "id"))
}

func next(_ *http.Request, g *gallery.Gallery) error { return g.Next() }

func previous(_ *http.Request, g *gallery.Gallery) error { return g.Previous() }

func closeGallery(_ *http.Request, g *gallery.Gallery) error {
	g.Close()
	return nil
}

func setImage(r *http.Request, g *gallery.Gallery) error {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return errBadIndex
	}
	return g.SetImage(i)
}

func pressKey(r *http.Request, g *gallery.Gallery) error {
	return g.HandleKey(gallery.Key(pathParam(r, "key")))
}

// transition mounts fn on POST and on GET. The rendered controls are plain
// links so the gallery works without JavaScript.
func (a *App) transition(r chi.Router, pattern string, fn transitionFunc) {
	h := a.handleTransition(fn)
	r.Get(pattern, h)
	r.Post(pattern, h)
}

// speculative reports a prefetch or prerender. The browser sends these
// without the visitor clicking anything.
func speculative(r *http.Request) bool {
	for _, h := range []string{"Sec-Purpose", "Purpose", "X-Moz"} {
		if strings.Contains(strings.ToLower(r.Header.Get(h)), "prefetch") {
			return true
		}
	}
	return false
}

// crossSite reports a request started by another site's page.
func crossSite(r *http.Request) bool {
	return r.Header.Get("Sec-Fetch-Site") == "cross-site"
}

func (a *App) handleTransition(fn transitionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		if speculative(r) {
			http.Error(w, "prefetch not allowed", http.StatusForbidden)
			return
		}
		if crossSite(r) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		visitor := visitorID(w, r)
		view, err := a.sessions.Apply(visitor, func(g *gallery.Gallery) error {
			return fn(r, g)
		})
		if errors.Is(err, errBadIndex) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		// Any other error is a transition that did not apply; the visitor
		// just sees the unchanged state.

		if wantsFragment(r) {
			var buf bytes.Buffer
			if err := a.renderer.Modal(&buf, view, a.links()); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(buf.Bytes())
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	visitor := visitorID(w, r)

	var buf bytes.Buffer
	err := render.Page(&buf, a.renderer, render.PageData{
		Title:    a.opts.Title,
		Theme:    a.themeFor(r.Context(), r, visitor),
		Projects: a.catalog.Projects(),
		View:     a.sessions.View(visitor),
		Links:    a.links(),
		LiveURL:  "/ws/gallery",
	})
	if err != nil {
		log.Printf("web: rendering page: %v", err)
		http.Error(w, "rendering page failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Accept-CH", clientHintHeader)
	w.Header().Set("Vary", clientHintHeader)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (a *App) handleProjects(w http.ResponseWriter, r *http.Request) {
	projects := a.catalog.Projects()
	if projects == nil {
		projects = []catalog.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

// galleryResponse is the JSON form of a visitor's gallery state.
type galleryResponse struct {
	Open         bool   `json:"open"`
	ProjectID    string `json:"projectId,omitempty"`
	Index        int    `json:"index"`
	ImageCount   int    `json:"imageCount"`
	CurrentImage string `json:"currentImage,omitempty"`
}

func newGalleryResponse(v gallery.View) galleryResponse {
	resp := galleryResponse{
		Open:         v.Open,
		Index:        v.Index,
		ImageCount:   v.ImageCount(),
		CurrentImage: v.CurrentImage(),
	}
	if v.Open {
		resp.ProjectID = v.Project.ID
	}
	return resp
}

func (a *App) handleGallery(w http.ResponseWriter, r *http.Request) {
	visitor := visitorID(w, r)
	writeJSON(w, http.StatusOK, newGalleryResponse(a.sessions.View(visitor)))
}

func (a *App) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	if crossSite(r) {
		http.Error(w, "cross-site request", http.StatusForbidden)
		return
	}
	visitor := visitorID(w, r)
	ctx := r.Context()

	mode := a.themeFor(ctx, r, visitor).Toggle()
	if err := a.themes.Set(ctx, visitor, mode); err != nil {
		log.Printf("web: saving theme: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "saving theme failed"})
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		writeJSON(w, http.StatusOK, map[string]string{"theme": string(mode)})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// themeFor resolves the visitor's theme. A store failure is logged and
// treated as no saved preference.
func (a *App) themeFor(ctx context.Context, r *http.Request, visitor string) theme.Mode {
	saved, ok, err := a.themes.Get(ctx, visitor)
	if err != nil {
		log.Printf("web: loading theme: %v", err)
	}
	if !ok {
		saved = ""
	}
	return theme.Resolve(string(saved), r.Header.Get(clientHintHeader), a.opts.DefaultTheme)
}

func (a *App) links() serverLinks {
	return serverLinks{notes: a.opts.NotesFile != ""}
}

func wantsFragment(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), fragmentType)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
