// Package catalog holds the ordered, read-only list of portfolio projects.
package catalog

import "strings"

// Project is a single portfolio entry. Field names follow the projects.json
// document the site is built from.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Client      string   `json:"client"`
	Role        string   `json:"role"`
	Description string   `json:"description"`
	ProjectDate string   `json:"projectDate"`
	Tags        []string `json:"tags"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images"`
	ClientLogo  string   `json:"clientLogo,omitempty"`
	ModalID     string   `json:"modalId,omitempty"`
}

// HasImages reports whether the project has at least one gallery image.
func (p Project) HasImages() bool { return len(p.Images) > 0 }

// Catalog is an ordered sequence of projects, unique by ID.
// A nil *Catalog behaves as an empty catalog.
type Catalog struct {
	projects []Project
	index    map[string]int
}

// New builds a catalog from the given projects. Entries without an ID are
// dropped and duplicate IDs keep their first occurrence. Nil tag and image
// lists are normalized to empty slices so renderers can range over them.
func New(projects []Project) *Catalog {
	c := &Catalog{index: make(map[string]int, len(projects))}
	for _, p := range projects {
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			continue
		}
		if _, dup := c.index[p.ID]; dup {
			continue
		}
		if p.Tags == nil {
			p.Tags = []string{}
		}
		if p.Images == nil {
			p.Images = []string{}
		}
		c.index[p.ID] = len(c.projects)
		c.projects = append(c.projects, p)
	}
	return c
}

// Empty returns a catalog with no projects.
func Empty() *Catalog { return New(nil) }

// Len returns the number of projects.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.projects)
}

// Projects returns the projects in catalog order. The returned slice is a
// copy; callers may not mutate the catalog through it.
func (c *Catalog) Projects() []Project {
	if c == nil {
		return nil
	}
	out := make([]Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// At returns the project at position i in catalog order.
func (c *Catalog) At(i int) (Project, bool) {
	if c == nil || i < 0 || i >= len(c.projects) {
		return Project{}, false
	}
	return c.projects[i], true
}

// Lookup finds a project by ID.
func (c *Catalog) Lookup(id string) (Project, bool) {
	if c == nil {
		return Project{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Project{}, false
	}
	return c.projects[i], true
}

// Images returns every image referenced by the catalog (thumbnails, gallery
// images and client logos) without duplicates, in first-seen order.
func (c *Catalog) Images() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}
	for _, p := range c.projects {
		add(p.Thumbnail)
		for _, img := range p.Images {
			add(img)
		}
		add(p.ClientLogo)
	}
	return out
}
