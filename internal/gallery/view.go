package gallery

import "github.com/ziadkadry99/folio/internal/catalog"

// View is a read-only snapshot of a Gallery. The zero View is Closed.
type View struct {
	Open    bool
	Project catalog.Project
	Index   int
}

// ImageCount returns the number of images in the open project.
func (v View) ImageCount() int {
	if !v.Open {
		return 0
	}
	return len(v.Project.Images)
}

// HasImages reports whether there is an image to show.
func (v View) HasImages() bool { return v.Open && v.Project.HasImages() }

// HasNavigation reports whether prev/next controls make sense, i.e. the open
// project has more than one image.
func (v View) HasNavigation() bool { return v.ImageCount() > 1 }

// CurrentImage returns the selected image, or "" when there is none. An
// index that does not fit the image list never panics.
func (v View) CurrentImage() string {
	n := v.ImageCount()
	if n == 0 || v.Index < 0 || v.Index >= n {
		return ""
	}
	return v.Project.Images[v.Index]
}

// NextIndex is the index Next would select.
func (v View) NextIndex() int { return NextIndex(v.Index, v.ImageCount()) }

// PrevIndex is the index Previous would select.
func (v View) PrevIndex() int { return PrevIndex(v.Index, v.ImageCount()) }
