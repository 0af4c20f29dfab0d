package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings for the search view
type keyMap struct {
	Focus     key.Binding
	Search    key.Binding
	Blur      key.Binding
	Up        key.Binding
	Down      key.Binding
	LimitUp   key.Binding
	LimitDown key.Binding
	View      key.Binding
	Open      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Focus: key.NewBinding(
			key.WithKeys("/", "s"),
			key.WithHelp("/", "edit query"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave input"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous result"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next result"),
		),
		LimitUp: key.NewBinding(
			key.WithKeys("+", "=", "right"),
			key.WithHelp("+", "raise limit"),
		),
		LimitDown: key.NewBinding(
			key.WithKeys("-", "left"),
			key.WithHelp("-", "lower limit"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "read abstract"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open on PubMed"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Focus, k.Up, k.Down, k.LimitUp, k.View, k.Open, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Search, k.Blur},
		{k.Up, k.Down, k.LimitUp, k.LimitDown},
		{k.View, k.Open, k.Quit},
	}
}
