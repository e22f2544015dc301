package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Open  key.Binding
	Prev  key.Binding
	Next  key.Binding
	Close key.Binding
	Theme key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Open:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Prev:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous image")),
	Next:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next image")),
	Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Theme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// gridKeys and modalKeys are the bindings shown in each mode.
type gridKeys struct{ keyMap }

func (k gridKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Theme, k.Quit}
}

func (k gridKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type modalKeys struct{ keyMap }

func (k modalKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Close, k.Theme, k.Quit}
}

func (k modalKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
