package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Enter       key.Binding
	Back        key.Binding
	Focus       key.Binding
	NextPane    key.Binding
	Genres      key.Binding
	Feedback    key.Binding
	About       key.Binding
	AddToWatch  key.Binding
	MarkWatched key.Binding
	Remove      key.Binding
	HideWatched key.Binding
	ShowMore    key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Focus: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Genres: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "genres"),
		),
		Feedback: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "feedback"),
		),
		About: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "about"),
		),
		AddToWatch: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "to-watch"),
		),
		MarkWatched: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "watched"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
		HideWatched: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hide watched"),
		),
		ShowMore: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "show more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
