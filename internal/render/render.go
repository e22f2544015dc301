// Package render turns the catalog and gallery state into HTML.
//
// A Renderer is a skin: it knows how to draw the project grid and the
// gallery modal. Two skins ship with folio, "classic" (a captioned portfolio
// grid with a split modal) and "modern" (project cards with an info panel and
// a thumbnail strip). Both consume the same gallery.View, so every front end
// re-renders from state after each transition.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"sort"

	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/gallery"
	"github.com/ziadkadry99/folio/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/style.css
var Stylesheet []byte

//go:embed static/script.js
var StaticScript []byte

//go:embed static/live.js
var LiveScript []byte

// Links decides where each control on a page points. The static site and
// the web app have different URL schemes for the same transitions.
type Links interface {
	Home() string
	Open(id string) string
	Image(v gallery.View, index int) string
	Next(v gallery.View) string
	Prev(v gallery.View) string
	Close() string
	Asset(name string) string
	ThemeToggle() string
	Stylesheet() string
	Script() string
	// Notes returns "" when no notes page is available.
	Notes() string
}

// Renderer draws the grid and the modal for one skin.
type Renderer interface {
	Name() string
	Grid(w io.Writer, projects []catalog.Project, links Links) error
	Modal(w io.Writer, view gallery.View, links Links) error
}

// PageData is everything needed to draw a full page.
type PageData struct {
	Title    string
	Theme    theme.Mode
	Projects []catalog.Project
	View     gallery.View
	Links    Links
	// LiveURL is the websocket endpoint for live control; empty on static pages.
	LiveURL string
}

type shellData struct {
	Title       string
	Skin        string
	Theme       string
	ThemeClass  string
	ThemeLabel  string
	ModalOpen   bool
	LiveURL     string
	Home        string
	NotesHref   string
	ThemeToggle string
	Stylesheet  string
	Script      string
	Grid        template.HTML
	Modal       template.HTML
}

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Page writes a complete HTML document: navigation, the grid, and the modal
// for data.View.
func Page(w io.Writer, r Renderer, data PageData) error {
	var grid, modal bytes.Buffer
	if err := r.Grid(&grid, data.Projects, data.Links); err != nil {
		return fmt.Errorf("rendering grid: %w", err)
	}
	if err := r.Modal(&modal, data.View, data.Links); err != nil {
		return fmt.Errorf("rendering modal: %w", err)
	}

	label := "Light"
	if data.Theme == theme.Light {
		label = "Dark"
	}

	return templates.ExecuteTemplate(w, "page", shellData{
		Title:       data.Title,
		Skin:        r.Name(),
		Theme:       string(data.Theme),
		ThemeClass:  data.Theme.HTMLClass(),
		ThemeLabel:  label,
		ModalOpen:   data.View.Open,
		LiveURL:     data.LiveURL,
		Home:        data.Links.Home(),
		NotesHref:   data.Links.Notes(),
		ThemeToggle: data.Links.ThemeToggle(),
		Stylesheet:  data.Links.Stylesheet(),
		Script:      data.Links.Script(),
		Grid:        template.HTML(grid.String()),
		Modal:       template.HTML(modal.String()),
	})
}

var skins = map[string]func() Renderer{
	"classic": func() Renderer { return Classic() },
	"modern":  func() Renderer { return Modern() },
}

// New returns the skin with the given name.
func New(name string) (Renderer, error) {
	f, ok := skins[name]
	if !ok {
		return nil, fmt.Errorf("unknown skin %q: must be one of %v", name, Names())
	}
	return f(), nil
}

// Names lists the available skins.
func Names() []string {
	names := make([]string, 0, len(skins))
	for n := range skins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
