package web

import (
	"net/url"
	"strconv"

	"github.com/ziadkadry99/folio/internal/gallery"
	"github.com/ziadkadry99/folio/internal/render"
)

// serverLinks points controls at the transition routes.
type serverLinks struct {
	notes bool
}

func (serverLinks) Home() string { return "/" }

func (serverLinks) Open(id string) string { return "/gallery/open/" + url.PathEscape(id) }

func (serverLinks) Image(_ gallery.View, index int) string {
	return "/gallery/image/" + strconv.Itoa(index)
}

func (serverLinks) Next(gallery.View) string { return "/gallery/next" }

func (serverLinks) Prev(gallery.View) string { return "/gallery/prev" }

func (serverLinks) Close() string { return "/gallery/close" }

func (serverLinks) Asset(name string) string { return render.AssetURL("/assets/", name) }

func (serverLinks) ThemeToggle() string { return "/theme/toggle" }

func (serverLinks) Stylesheet() string { return "/static/style.css" }

func (serverLinks) Script() string { return "/static/live.js" }

func (l serverLinks) Notes() string {
	if !l.notes {
		return ""
	}
	return "/notes"
}
