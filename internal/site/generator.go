// Package site writes the portfolio as a self-contained static site. Each
// reachable gallery state gets its own page, so the modal works without a
// server.
package site

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ziadkadry99/folio/internal/assets"
	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/gallery"
	"github.com/ziadkadry99/folio/internal/notes"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/theme"
)

// Generator builds the static site.
type Generator struct {
	Catalog   *catalog.Catalog
	Renderer  render.Renderer
	OutputDir string
	Title     string
	Theme     theme.Mode

	// Assets is copied to <OutputDir>/assets. An empty Root skips the copy.
	Assets assets.Config
	// NotesFile is an optional markdown file published as notes.html.
	NotesFile string

	Reporter progress.Reporter
}

// page is one HTML file to write.
type page struct {
	rel  string // slash path under OutputDir
	base string
	view gallery.View
}

// Generate writes the site and returns the number of HTML pages written.
func (g *Generator) Generate() (int, error) {
	if g.Renderer == nil {
		return 0, errors.New("site: no renderer")
	}
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Discard
	}

	pages, err := statePages(g.Catalog)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}
	if err := g.writeStatic(); err != nil {
		return 0, err
	}

	total := len(pages)
	if g.NotesFile != "" {
		total++
	}
	reporter.Start(total)
	defer reporter.Finish()

	projects := g.Catalog.Projects()
	for i, p := range pages {
		if err := g.writePage(p, projects); err != nil {
			return i, fmt.Errorf("rendering %s: %w", p.rel, err)
		}
		reporter.Update(i+1, p.rel)
	}
	written := len(pages)

	if g.NotesFile != "" {
		if err := g.writeNotes(); err != nil {
			return written, err
		}
		written++
		reporter.Update(written, "notes.html")
	}

	if g.Assets.Root != "" {
		files, err := assets.Walk(g.Assets)
		if err != nil {
			return written, err
		}
		if missing := MissingAssets(g.Catalog, files); len(missing) > 0 {
			log.Printf("Warning: %d referenced images not found in %s: %s",
				len(missing), g.Assets.Root, strings.Join(missing, ", "))
		}
		if _, err := assets.Copy(files, filepath.Join(g.OutputDir, "assets")); err != nil {
			return written, err
		}
	}

	return written, nil
}

// MissingAssets lists images the catalog references that are not among
// files. Absolute URLs are served from elsewhere and never missing.
func MissingAssets(c *catalog.Catalog, files []assets.File) []string {
	have := make(map[string]bool, len(files))
	for _, f := range files {
		have[f.RelPath] = true
	}
	var missing []string
	for _, name := range c.Images() {
		if render.IsRemote(name) {
			continue
		}
		if !have[strings.TrimPrefix(path.Clean("/"+name), "/")] {
			missing = append(missing, name)
		}
	}
	return missing
}

// statePages lists the index page plus one page per reachable open state,
// found by driving a gallery through Open and Next until the index wraps.
func statePages(c *catalog.Catalog) ([]page, error) {
	pages := []page{{rel: "index.html"}}

	gal := gallery.New(c)
	for _, p := range c.Projects() {
		if err := gal.Open(p.ID); err != nil {
			return nil, fmt.Errorf("opening %s: %w", p.ID, err)
		}
		for {
			pages = append(pages, page{
				rel:  "projects/" + projectDir(p.ID) + "/" + strconv.Itoa(gal.Index()) + ".html",
				base: "../../",
				view: gal.View(),
			})
			if err := gal.Next(); err != nil || gal.Index() == 0 {
				break
			}
		}
		gal.Close()
	}
	return pages, nil
}

func (g *Generator) writePage(p page, projects []catalog.Project) error {
	var buf bytes.Buffer
	err := render.Page(&buf, g.Renderer, render.PageData{
		Title:    g.Title,
		Theme:    g.Theme,
		Projects: projects,
		View:     p.view,
		Links:    staticLinks{base: p.base, notes: g.NotesFile != ""},
	})
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(g.OutputDir, filepath.FromSlash(p.rel)), buf.Bytes())
}

func (g *Generator) writeStatic() error {
	if err := writeFile(filepath.Join(g.OutputDir, "style.css"), render.Stylesheet); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(g.OutputDir, "script.js"), render.StaticScript); err != nil {
		return err
	}
	if err := g.Catalog.WriteFile(filepath.Join(g.OutputDir, "data", "projects.json")); err != nil {
		return fmt.Errorf("writing project data: %w", err)
	}
	return nil
}

func (g *Generator) writeNotes() error {
	var buf bytes.Buffer
	if err := notes.NewConverter().RenderFile(&buf, g.NotesFile); err != nil {
		return err
	}
	return writeFile(filepath.Join(g.OutputDir, "notes.html"), buf.Bytes())
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
