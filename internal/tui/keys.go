package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Prev         key.Binding
	Next         key.Binding
	Month        key.Binding
	Week         key.Binding
	Day          key.Binding
	Availability key.Binding
	Today        key.Binding
	Calendars    key.Binding
	Select       key.Binding
	SelectPrev   key.Binding
	Activate     key.Binding
	OpenRecord   key.Binding
	LaunchFlow   key.Binding
	Close        key.Binding
	Up           key.Binding
	Down         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Month, k.Week, k.Day, k.Availability, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Today, k.Up, k.Down},
		{k.Month, k.Week, k.Day, k.Availability, k.Calendars},
		{k.Select, k.SelectPrev, k.Activate, k.OpenRecord, k.LaunchFlow, k.Close},
		{k.Help, k.Quit},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Month: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "month"),
		),
		Week: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "week"),
		),
		Day: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "day"),
		),
		Availability: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "availability"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Calendars: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "calendars"),
		),
		Select: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next event"),
		),
		SelectPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev event"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "event detail"),
		),
		OpenRecord: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open record"),
		),
		LaunchFlow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "launch flow"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
