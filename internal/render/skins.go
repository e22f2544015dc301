package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/gallery"
)

const (
	modernExcerptLength = 120
	modernCardTags      = 3
)

// ClassicSkin is the captioned portfolio grid with a split image/detail
// modal, arrow controls and dot indicators.
type ClassicSkin struct{}

// Classic returns the classic skin.
func Classic() *ClassicSkin { return &ClassicSkin{} }

func (*ClassicSkin) Name() string { return "classic" }

func (*ClassicSkin) Grid(w io.Writer, projects []catalog.Project, links Links) error {
	cards := make([]card, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, card{
			ID:      p.ID,
			Href:    links.Open(p.ID),
			Title:   p.Title,
			Client:  p.Client,
			Thumb:   thumb(p, links),
			TagLine: strings.Join(p.Tags, ", "),
		})
	}
	return execute(w, "classic-grid", gridData{Cards: cards})
}

func (*ClassicSkin) Modal(w io.Writer, v gallery.View, links Links) error {
	d, err := newModalData(v, links)
	if err != nil {
		return err
	}
	return execute(w, "classic-modal", d)
}

// ModernSkin is the card grid with role, excerpt and a few tags per card,
// and a modal with an info panel and a thumbnail strip.
type ModernSkin struct{}

// Modern returns the modern skin.
func Modern() *ModernSkin { return &ModernSkin{} }

func (*ModernSkin) Name() string { return "modern" }

func (*ModernSkin) Grid(w io.Writer, projects []catalog.Project, links Links) error {
	cards := make([]card, 0, len(projects))
	for i, p := range projects {
		tags := p.Tags
		if len(tags) > modernCardTags {
			tags = tags[:modernCardTags]
		}
		cards = append(cards, card{
			ID:      p.ID,
			Href:    links.Open(p.ID),
			Title:   p.Title,
			Client:  p.Client,
			Role:    p.Role,
			Thumb:   thumb(p, links),
			Tags:    tags,
			Excerpt: excerpt(p.Description, modernExcerptLength),
			Delay:   fmt.Sprintf("%.1fs", float64(i)*0.1),
		})
	}
	return execute(w, "modern-grid", gridData{Cards: cards})
}

func (*ModernSkin) Modal(w io.Writer, v gallery.View, links Links) error {
	d, err := newModalData(v, links)
	if err != nil {
		return err
	}
	return execute(w, "modern-modal", d)
}

func thumb(p catalog.Project, links Links) string {
	if p.Thumbnail == "" {
		return ""
	}
	return links.Asset(p.Thumbnail)
}

func execute(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("executing %s: %w", name, err)
	}
	return nil
}
