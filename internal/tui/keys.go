package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the study screen key bindings with built-in help text.
type KeyMap struct {
	Submit    key.Binding
	Prev      key.Binding
	Next      key.Binding
	Flip      key.Binding
	Focus     key.Binding
	Leave     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "generate"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Flip: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "flip"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave input"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// inputKeys is shown while the topic input has focus.
type inputKeys KeyMap

func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Focus, k.Leave, k.ForceQuit}
}

func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// cardKeys is shown while the card has focus.
type cardKeys KeyMap

func (k cardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Flip, k.Focus, k.Quit}
}

func (k cardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
