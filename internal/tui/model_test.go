package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/theme"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update should return a Model")
	}
	return m
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Project{
		{ID: "a", Title: "Alpha", Client: "Acme", Role: "Design", Tags: []string{"Go", "CSS"}, Images: []string{"a1.png", "a2.png", "a3.png"}},
		{ID: "b", Title: "Bare", Client: "Nobody"},
		{ID: "c", Title: "Solo", Client: "One", Images: []string{"c1.png"}},
	})
}

func TestGridNavigation(t *testing.T) {
	m := New(testCatalog(), "Folio", theme.Dark)
	assert.Equal(t, 0, m.Cursor())

	m = press(t, m, "down", "j")
	assert.Equal(t, 2, m.Cursor())

	m = press(t, m, "down")
	assert.Equal(t, 2, m.Cursor(), "cursor stops at the last card")

	m = press(t, m, "up", "k", "k")
	assert.Equal(t, 0, m.Cursor(), "cursor stops at the first card")
}

func TestEnterOpensSelectedProject(t *testing.T) {
	m := New(testCatalog(), "Folio", theme.Dark)
	m = press(t, m, "enter")

	v := m.Gallery()
	assert.True(t, v.Open)
	assert.Equal(t, "a", v.Project.ID)
	assert.Equal(t, 0, v.Index)
	assert.Contains(t, m.View(), "Image 1/3: a1.png")
}

func TestArrowKeysRouteThroughGallery(t *testing.T) {
	m := New(testCatalog(), "Folio", theme.Dark)
	m = press(t, m, "enter", "right", "right", "right")
	assert.Equal(t, 0, m.Gallery().Index, "next wraps after the last image")

	m = press(t, m, "left")
	assert.Equal(t, 2, m.Gallery().Index, "previous wraps before the first image")

	// up/down do not move the grid cursor while the modal is open
	m = press(t, m, "down")
	assert.Equal(t, 0, m.Cursor())

	m = press(t, m, "esc")
	assert.False(t, m.Gallery().Open)
	assert.Equal(t, 0, m.Gallery().Index)
}

func TestKeysIgnoredWhileClosed(t *testing.T) {
	m := New(testCatalog(), "Folio", theme.Dark)
	m = press(t, m, "right", "left", "esc")
	assert.False(t, m.Gallery().Open)
	assert.Equal(t, 0, m.Cursor())
}

func TestProjectWithoutImages(t *testing.T) {
	m := New(testCatalog(), "Folio", theme.Dark)
	m = press(t, m, "down", "enter", "right")

	v := m.Gallery()
	require.True(t, v.Open)
	assert.Equal(t, "b", v.Project.ID)
	assert.Equal(t, 0, v.Index)
	assert.Contains(t, m.View(), "No images available")
}

func TestSingleImageHasNoIndicators(t *testing.T) {
	m := New(testCatalog(), "Folio", theme.Dark)
	m = press(t, m, "down", "down", "enter")
	out := m.View()
	assert.Contains(t, out, "Image 1/1: c1.png")
	assert.NotContains(t, out, "●")
}

func TestIndicatorsHighlightCurrent(t *testing.T) {
	m := New(testCatalog(), "Folio", theme.Dark)
	m = press(t, m, "enter", "right")
	out := m.View()
	assert.Equal(t, 1, strings.Count(out, "●"))
	assert.Equal(t, 2, strings.Count(out, "○"))
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := New(testCatalog(), "Folio", theme.Dark)
		_, cmd := m.Update(keyMsg(k))
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), k)
	}
}

func TestThemeToggle(t *testing.T) {
	m := New(testCatalog(), "Folio", theme.Dark)
	m = press(t, m, "t")
	assert.Equal(t, theme.Light, m.theme)
}

func TestEmptyCatalog(t *testing.T) {
	m := New(catalog.Empty(), "Folio", theme.Dark)
	m = press(t, m, "down", "enter")
	assert.False(t, m.Gallery().Open)
	assert.Contains(t, m.View(), "No projects")
}

func TestGridMarksProjectsWithoutImages(t *testing.T) {
	m := New(testCatalog(), "Folio", theme.Dark)
	out := m.View()

	assert.Equal(t, 1, strings.Count(out, "(no images)"))
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "(no images)") {
			assert.Contains(t, line, "Nobody")
		}
	}
}

func TestOpenWithCursorPastEnd(t *testing.T) {
	m := New(catalog.Empty(), "Folio", theme.Dark)
	m = press(t, m, "down", "enter")
	assert.Equal(t, 0, m.Cursor())
	assert.False(t, m.Gallery().Open)
}
