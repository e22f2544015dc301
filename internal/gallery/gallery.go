// Package gallery implements the modal gallery state machine: which project
// is open and which of its images is selected.
//
// The machine has two states, Closed and Open(project, index). Every
// operation is total: a transition that does not apply leaves the state
// untouched and reports why through one of the sentinel errors below. Front
// ends are expected to ignore those errors, so users observe a no-op.
package gallery

import (
	"errors"

	"github.com/ziadkadry99/folio/internal/catalog"
)

var (
	ErrUnknownProject  = errors.New("gallery: unknown project")
	ErrClosed          = errors.New("gallery: no project open")
	ErrNoImages        = errors.New("gallery: project has no images")
	ErrImageOutOfRange = errors.New("gallery: image index out of range")
	ErrUnboundKey      = errors.New("gallery: key not bound")
)

// Catalog is the lookup the gallery needs from the project catalog.
type Catalog interface {
	Lookup(id string) (catalog.Project, bool)
}

// Gallery is the mutable gallery state. It is not safe for concurrent use;
// callers serialize transitions the way a single UI event loop would.
type Gallery struct {
	catalog Catalog

	// open and project are kept in step: open is true iff project is set.
	open    bool
	project catalog.Project
	index   int
}

// New returns a closed gallery over the given catalog.
func New(c Catalog) *Gallery {
	return &Gallery{catalog: c}
}

// IsOpen reports whether a project is open.
func (g *Gallery) IsOpen() bool { return g.open }

// ProjectID returns the open project's ID, or "" when closed.
func (g *Gallery) ProjectID() string {
	if !g.open {
		return ""
	}
	return g.project.ID
}

// Index returns the selected image index. It is 0 while closed.
func (g *Gallery) Index() int { return g.index }

// Open selects the project with the given ID and resets the image index to
// 0. An unknown ID leaves the state unchanged, even if another project is
// currently open.
func (g *Gallery) Open(id string) error {
	if g.catalog == nil {
		return ErrUnknownProject
	}
	p, ok := g.catalog.Lookup(id)
	if !ok {
		return ErrUnknownProject
	}
	g.project = p
	g.open = true
	g.index = 0
	return nil
}

// Close returns the gallery to Closed. Closing a closed gallery is a no-op.
func (g *Gallery) Close() {
	g.open = false
	g.project = catalog.Project{}
	g.index = 0
}

// Next advances to the following image, wrapping to the first one after the
// last.
func (g *Gallery) Next() error {
	n, err := g.navigable()
	if err != nil {
		return err
	}
	g.index = NextIndex(g.index, n)
	return nil
}

// Previous moves to the preceding image, wrapping to the last one before the
// first.
func (g *Gallery) Previous() error {
	n, err := g.navigable()
	if err != nil {
		return err
	}
	g.index = PrevIndex(g.index, n)
	return nil
}

// SetImage selects the image at index. Indices outside [0, len(images)) are
// rejected and leave the selection unchanged.
func (g *Gallery) SetImage(index int) error {
	n, err := g.navigable()
	if err != nil {
		return err
	}
	if index < 0 || index >= n {
		return ErrImageOutOfRange
	}
	g.index = index
	return nil
}

func (g *Gallery) navigable() (int, error) {
	if !g.open {
		return 0, ErrClosed
	}
	n := len(g.project.Images)
	if n == 0 {
		return 0, ErrNoImages
	}
	return n, nil
}

// View returns an immutable snapshot of the current state for rendering.
func (g *Gallery) View() View {
	if !g.open {
		return View{}
	}
	return View{Open: true, Project: g.project, Index: g.index}
}

// NextIndex returns the index after i in a ring of n images.
func NextIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i + 1) % n
}

// PrevIndex returns the index before i in a ring of n images.
func PrevIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	if i == 0 {
		return n - 1
	}
	return i - 1
}
