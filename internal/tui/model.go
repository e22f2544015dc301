// Package tui is a terminal front end for browsing the portfolio. It drives
// the same gallery state machine as the web pages: enter opens a project,
// arrow keys and escape go through the gallery's key routing.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/gallery"
	"github.com/ziadkadry99/folio/internal/theme"
)

// Model is the bubbletea model.
type Model struct {
	title   string
	catalog *catalog.Catalog
	gallery *gallery.Gallery
	cursor  int
	theme   theme.Mode
	styles  styles
	help    help.Model
}

// New creates a model over c with the grid focused and the gallery closed.
func New(c *catalog.Catalog, title string, mode theme.Mode) Model {
	return Model{
		title:   title,
		catalog: c,
		gallery: gallery.New(c),
		theme:   mode,
		styles:  newStyles(mode),
		help:    help.New(),
	}
}

// Run starts the terminal UI and blocks until the user quits.
func Run(c *catalog.Catalog, title string, mode theme.Mode) error {
	_, err := tea.NewProgram(New(c, title, mode), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// Cursor is the highlighted card in the grid.
func (m Model) Cursor() int { return m.cursor }

// Gallery returns the current gallery view.
func (m Model) Gallery() gallery.View { return m.gallery.View() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Theme):
		m.theme = m.theme.Toggle()
		m.styles = newStyles(m.theme)
		return m, nil
	}

	// Gallery transitions report no-ops as errors; those are ignored so the
	// screen simply stays as it was.
	if m.gallery.IsOpen() {
		switch {
		case key.Matches(msg, keys.Prev):
			_ = m.gallery.HandleKey(gallery.KeyArrowLeft)
		case key.Matches(msg, keys.Next):
			_ = m.gallery.HandleKey(gallery.KeyArrowRight)
		case key.Matches(msg, keys.Close):
			_ = m.gallery.HandleKey(gallery.KeyEscape)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < m.catalog.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Open):
		if p, ok := m.catalog.At(m.cursor); ok {
			_ = m.gallery.Open(p.ID)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.title))
	b.WriteString("\n\n")

	v := m.gallery.View()
	if v.Open {
		b.WriteString(m.modalView(v))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(modalKeys{keys}))
	} else {
		b.WriteString(m.gridView())
		b.WriteString("\n")
		b.WriteString(m.help.View(gridKeys{keys}))
	}
	return b.String()
}

func (m Model) gridView() string {
	if m.catalog.Len() == 0 {
		return m.styles.muted.Render("No projects") + "\n"
	}
	var b strings.Builder
	for i, p := range m.catalog.Projects() {
		line := fmt.Sprintf("%s  %s", p.Client, m.styles.muted.Render(p.Role))
		if !p.HasImages() {
			line += m.styles.muted.Render("  (no images)")
		}
		if i == m.cursor {
			b.WriteString(m.styles.selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
		if len(p.Tags) > 0 {
			b.WriteString("    " + m.styles.muted.Render(strings.Join(p.Tags, ", ")) + "\n")
		}
	}
	return b.String()
}

func (m Model) modalView(v gallery.View) string {
	p := v.Project
	var b strings.Builder
	b.WriteString(m.styles.heading.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.accent.Render(p.Role))
	if p.ProjectDate != "" {
		b.WriteString("  " + m.styles.muted.Render(p.ProjectDate))
	}
	b.WriteString("\n\n")

	if img := v.CurrentImage(); img != "" {
		fmt.Fprintf(&b, "Image %d/%d: %s\n", v.Index+1, v.ImageCount(), img)
		if v.HasNavigation() {
			b.WriteString(indicators(v, m.styles))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(m.styles.muted.Render("No images available"))
		b.WriteString("\n")
	}

	if len(p.Tags) > 0 {
		b.WriteString("\nSkills: " + strings.Join(p.Tags, ", ") + "\n")
	}
	if p.Description != "" {
		b.WriteString("\n" + p.Description + "\n")
	}
	return m.styles.modal.Render(b.String())
}

func indicators(v gallery.View, s styles) string {
	dots := make([]string, v.ImageCount())
	for i := range dots {
		if i == v.Index {
			dots[i] = s.accent.Render("●")
		} else {
			dots[i] = s.muted.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

type styles struct {
	title    lipgloss.Style
	heading  lipgloss.Style
	selected lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
	modal    lipgloss.Style
}

func newStyles(mode theme.Mode) styles {
	text, muted, border := lipgloss.Color("252"), lipgloss.Color("245"), lipgloss.Color("240")
	if mode == theme.Light {
		text, muted, border = lipgloss.Color("235"), lipgloss.Color("241"), lipgloss.Color("250")
	}
	accent := lipgloss.Color("73")
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		heading:  lipgloss.NewStyle().Bold(true).Foreground(text),
		selected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		accent:   lipgloss.NewStyle().Foreground(accent),
		muted:    lipgloss.NewStyle().Foreground(muted),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2),
	}
}
