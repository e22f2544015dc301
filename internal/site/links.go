package site

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ziadkadry99/folio/internal/gallery"
	"github.com/ziadkadry99/folio/internal/render"
)

// staticLinks points every control at a pre-rendered page. base is the
// relative path from the current page back to the site root.
type staticLinks struct {
	base  string
	notes bool
}

func (l staticLinks) Home() string { return l.base + "index.html" }

func (l staticLinks) Open(id string) string { return l.page(id, 0) }

func (l staticLinks) Image(v gallery.View, index int) string {
	return l.page(v.Project.ID, index)
}

func (l staticLinks) Next(v gallery.View) string { return l.page(v.Project.ID, v.NextIndex()) }

func (l staticLinks) Prev(v gallery.View) string { return l.page(v.Project.ID, v.PrevIndex()) }

func (l staticLinks) Close() string { return l.base + "index.html" }

func (l staticLinks) Asset(name string) string {
	return render.AssetURL(l.base+"assets/", name)
}

// ThemeToggle is handled client side by script.js.
func (l staticLinks) ThemeToggle() string { return "#theme" }

func (l staticLinks) Stylesheet() string { return l.base + "style.css" }

func (l staticLinks) Script() string { return l.base + "script.js" }

func (l staticLinks) Notes() string {
	if !l.notes {
		return ""
	}
	return l.base + "notes.html"
}

func (l staticLinks) page(id string, index int) string {
	return l.base + "projects/" + url.PathEscape(projectDir(id)) + "/" + strconv.Itoa(index) + ".html"
}

// projectDir is the directory name holding a project's pages. Dot-only ids
// are spelled out as %2E so they cannot name "." or "..".
func projectDir(id string) string {
	if strings.Trim(id, ".") == "" {
		return strings.Repeat("%2E", len(id))
	}
	return url.PathEscape(id)
}
