package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab           key.Binding
	ShiftTab      key.Binding
	Quit          key.Binding
	Up            key.Binding
	Down          key.Binding
	Help          key.Binding
	CycleFreq     key.Binding
	CyclePriority key.Binding
	CycleDone     key.Binding
	ClearFilter   key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Quit},
		{k.Up, k.Down, k.Help},
		{k.CycleFreq, k.CyclePriority, k.CycleDone, k.ClearFilter},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		CycleFreq: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter frequency"),
		),
		CyclePriority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "filter priority"),
		),
		CycleDone: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "filter completed"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
	}
}
