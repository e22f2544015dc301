package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/ziadkadry99/folio/internal/gallery"
)

// descriptionMD renders project descriptions. Raw HTML is escaped.
var descriptionMD = goldmark.New()

// card is the per-project data a grid template consumes.
type card struct {
	ID      string
	Href    string
	Title   string
	Client  string
	Role    string
	Thumb   string
	Tags    []string
	TagLine string
	Excerpt string
	Delay   string
}

type gridData struct {
	Cards []card
}

// imageItem is one indicator or thumbnail in the modal.
type imageItem struct {
	Index  int
	Number int
	Src    string
	Href   string
	Active bool
}

type modalData struct {
	Open          bool
	ProjectID     string
	Title         string
	Client        string
	Role          string
	Date          string
	ModalClass    string
	Description   template.HTML
	Tags          []string
	Logo          string
	Image         string
	HasImages     bool
	HasNavigation bool
	ImageCount    int
	Images        []imageItem
	CloseHref     string
	PrevHref      string
	NextHref      string
}

// newModalData projects a gallery view into template data. A closed view
// yields only Open=false; an image-less project yields no image fields.
func newModalData(v gallery.View, links Links) (modalData, error) {
	if !v.Open {
		return modalData{}, nil
	}
	p := v.Project

	desc, err := renderDescription(p.Description)
	if err != nil {
		return modalData{}, err
	}

	d := modalData{
		Open:        true,
		ProjectID:   p.ID,
		Title:       p.Title,
		Client:      p.Client,
		Role:        p.Role,
		Date:        p.ProjectDate,
		Description: desc,
		Tags:        p.Tags,
		CloseHref:   links.Close(),
		ImageCount:  v.ImageCount(),
	}
	if p.ModalID != "" {
		d.ModalClass = "project-" + p.ModalID
	}
	if p.ClientLogo != "" {
		d.Logo = links.Asset(p.ClientLogo)
	}

	if img := v.CurrentImage(); img != "" {
		d.HasImages = true
		d.Image = links.Asset(img)
		d.PrevHref = links.Prev(v)
		d.NextHref = links.Next(v)
		d.HasNavigation = v.HasNavigation()
		for i, name := range p.Images {
			d.Images = append(d.Images, imageItem{
				Index:  i,
				Number: i + 1,
				Src:    links.Asset(name),
				Href:   links.Image(v, i),
				Active: i == v.Index,
			})
		}
	}
	return d, nil
}

func renderDescription(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := descriptionMD.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering description: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// excerpt shortens s to max runes, adding "..." when it was cut.
func excerpt(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
