package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the demo's bindings and implements help.KeyMap.
type KeyMap struct {
	Toast     key.Binding
	TitleOnly key.Binding
	Image     key.Binding
	Spinner   key.Binding
	Hide      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard demo bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toast: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toast"),
		),
		TitleOnly: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "title only"),
		),
		Image: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "image"),
		),
		Spinner: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "spinner"),
		),
		Hide: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hide"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toast, k.TitleOnly, k.Image, k.Spinner, k.Hide, k.Quit}
}

// FullHelp returns bindings grouped by columns for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toast, k.TitleOnly, k.Image, k.Spinner},
		{k.Hide, k.Quit},
	}
}
