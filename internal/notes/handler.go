package notes

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// Handler serves the markdown file at path as a page on "/", re-reading it
// on every request so edits show up on reload. Other paths are served from
// the file's directory, so relative images and links keep working.
func Handler(path string) http.Handler {
	c := NewConverter()
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := c.RenderFile(w, path); err != nil {
			log.Printf("notes: %v", err)
			http.Error(w, "notes unavailable", http.StatusInternalServerError)
		}
	})
	r.Handle("/*", http.FileServer(http.Dir(filepath.Dir(path))))
	return r
}
