package site

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/folio/internal/assets"
	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/theme"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Project{
		{ID: "a", Title: "Alpha", Client: "Acme", Thumbnail: "a.png", Images: []string{"a1.png", "a2.png", "a3.png"}},
		{ID: "b", Title: "Bare", Client: "Nobody"},
		{ID: "c", Title: "Solo", Client: "One", Images: []string{"c1.png"}},
	})
}

func newGenerator(t *testing.T, c *catalog.Catalog) *Generator {
	t.Helper()
	return &Generator{
		Catalog:   c,
		Renderer:  render.Classic(),
		OutputDir: t.TempDir(),
		Title:     "Folio",
		Theme:     theme.Dark,
	}
}

func readOutput(t *testing.T, g *Generator, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(g.OutputDir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func TestGenerateOnePagePerState(t *testing.T) {
	g := newGenerator(t, testCatalog())

	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// index + 3 pages for a + 1 placeholder page for b + 1 page for c
	if n != 6 {
		t.Errorf("Generate wrote %d pages, want 6", n)
	}

	for _, rel := range []string{
		"index.html",
		"projects/a/0.html",
		"projects/a/1.html",
		"projects/a/2.html",
		"projects/b/0.html",
		"projects/c/0.html",
		"style.css",
		"script.js",
		"data/projects.json",
	} {
		if _, err := os.Stat(filepath.Join(g.OutputDir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(g.OutputDir, "projects", "a", "3.html")); err == nil {
		t.Error("projects/a/3.html is not a reachable state")
	}
	if _, err := os.Stat(filepath.Join(g.OutputDir, "projects", "c", "1.html")); err == nil {
		t.Error("projects/c/1.html is not a reachable state")
	}
}

func TestGeneratedLinksFollowTransitions(t *testing.T) {
	g := newGenerator(t, testCatalog())
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	index := readOutput(t, g, "index.html")
	if strings.Contains(index, "modal-overlay show") {
		t.Error("index should render the modal closed")
	}
	if !strings.Contains(index, `href="projects/a/0.html"`) {
		t.Error("index card should link to the first page of project a")
	}

	last := readOutput(t, g, "projects/a/2.html")
	for _, want := range []string{
		`data-key-arrowright="../../projects/a/0.html"`,
		`data-key-arrowleft="../../projects/a/1.html"`,
		`data-key-escape="../../index.html"`,
		`src="../../assets/a3.png"`,
		`href="../../style.css"`,
	} {
		if !strings.Contains(last, want) {
			t.Errorf("projects/a/2.html missing %s", want)
		}
	}

	bare := readOutput(t, g, "projects/b/0.html")
	if !strings.Contains(bare, "No images available") {
		t.Error("image-less project page should show the placeholder")
	}
}

func TestGenerateProjectData(t *testing.T) {
	g := newGenerator(t, testCatalog())
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var projects []catalog.Project
	if err := json.Unmarshal([]byte(readOutput(t, g, "data/projects.json")), &projects); err != nil {
		t.Fatalf("decoding projects.json: %v", err)
	}
	if len(projects) != 3 || projects[0].ID != "a" {
		t.Errorf("projects.json = %+v", projects)
	}
}

func TestGenerateEmptyCatalog(t *testing.T) {
	g := newGenerator(t, catalog.Empty())
	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 1 {
		t.Errorf("empty catalog wrote %d pages, want 1", n)
	}
	if got := strings.TrimSpace(readOutput(t, g, "data/projects.json")); got != "[]" {
		t.Errorf("projects.json = %q, want []", got)
	}
}

func TestGenerateNotesAndAssets(t *testing.T) {
	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "a1.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "readme.txt"), []byte("txt"), 0o644); err != nil {
		t.Fatal(err)
	}
	notesPath := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(notesPath, []byte("# Review\n\nAll good."), 0o644); err != nil {
		t.Fatal(err)
	}

	var report bytes.Buffer
	g := newGenerator(t, testCatalog())
	g.NotesFile = notesPath
	g.Assets = assets.Config{Root: src}
	g.Reporter = &progress.LineReporter{Out: &report}

	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 7 {
		t.Errorf("Generate wrote %d pages, want 7", n)
	}

	if !strings.Contains(readOutput(t, g, "notes.html"), "<title>Review</title>") {
		t.Error("notes.html not rendered")
	}
	if !strings.Contains(readOutput(t, g, "index.html"), `href="notes.html"`) {
		t.Error("index should link to notes.html")
	}
	if got := readOutput(t, g, "assets/a1.png"); got != "png" {
		t.Errorf("assets/a1.png = %q", got)
	}
	if _, err := os.Stat(filepath.Join(g.OutputDir, "assets", "readme.txt")); err == nil {
		t.Error("readme.txt should not pass the default include globs")
	}
	if !strings.Contains(report.String(), "[7/7] notes.html") {
		t.Errorf("progress output:\n%s", report.String())
	}
}

func TestMissingAssets(t *testing.T) {
	c := catalog.New([]catalog.Project{
		{ID: "a", Thumbnail: "thumbs/a.png", Images: []string{"/a1.png", "a2.png", "https://cdn.example/a3.png"}, ClientLogo: "logo.svg"},
	})
	files := []assets.File{{RelPath: "thumbs/a.png"}, {RelPath: "a1.png"}}

	got := MissingAssets(c, files)
	want := []string{"a2.png", "logo.svg"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("MissingAssets = %v, want %v", got, want)
	}
	if got := MissingAssets(catalog.Empty(), nil); len(got) != 0 {
		t.Errorf("empty catalog: %v", got)
	}
}

func TestGenerateWarnsAboutMissingAssets(t *testing.T) {
	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "a1.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	log.SetOutput(&out)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	g := newGenerator(t, testCatalog())
	g.Assets = assets.Config{Root: src}
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out.String(), "a2.png") || strings.Contains(out.String(), "a1.png") {
		t.Errorf("warning = %q", out.String())
	}
}

func TestDotOnlyProjectIDStaysUnderProjects(t *testing.T) {
	c := catalog.New([]catalog.Project{{ID: "..", Title: "Up"}, {ID: ".", Title: "Here"}})
	g := newGenerator(t, c)
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, rel := range []string{"projects/%2E%2E/0.html", "projects/%2E/0.html"} {
		if _, err := os.Stat(filepath.Join(g.OutputDir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("%s not written: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(g.OutputDir, "0.html")); err == nil {
		t.Error("a page escaped the projects directory")
	}
	if !strings.Contains(readOutput(t, g, "index.html"), `href="projects/%252E%252E/0.html"`) {
		t.Error("index should link to the escaped project directory")
	}
}

func TestGenerateRequiresRenderer(t *testing.T) {
	g := newGenerator(t, testCatalog())
	g.Renderer = nil
	if _, err := g.Generate(); err == nil {
		t.Error("expected error without a renderer")
	}
}

func TestStatePages(t *testing.T) {
	pages, err := statePages(testCatalog())
	if err != nil {
		t.Fatalf("statePages: %v", err)
	}
	if len(pages) != 6 {
		t.Fatalf("got %d pages, want 6", len(pages))
	}
	if pages[0].view.Open {
		t.Error("index page should be closed")
	}
	for i, p := range pages[1:4] {
		if p.view.Project.ID != "a" || p.view.Index != i {
			t.Errorf("page %d = %s/%d, want a/%d", i+1, p.view.Project.ID, p.view.Index, i)
		}
	}
}

func TestFileHandler(t *testing.T) {
	g := newGenerator(t, testCatalog())
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	srv := httptest.NewServer(FileHandler(g.OutputDir))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/projects/c/0.html")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
