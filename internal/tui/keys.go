package tui

import "github.com/charmbracelet/bubbles/key"

// startKeyMap defines key bindings for the start page
type startKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Enter       key.Binding
	Destination key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k startKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Destination, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k startKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Destination, k.Quit},
	}
}

func newStartKeyMap() startKeyMap {
	return startKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open group"),
		),
		Destination: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "destination"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// groupKeyMap defines key bindings for a group page
type groupKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Press key.Binding
	On    key.Binding
	Off   key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k groupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Press, k.On, k.Off, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k groupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Press},
		{k.On, k.Off, k.Back, k.Quit},
	}
}

func newGroupKeyMap() groupKeyMap {
	return groupKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "on button"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "off button"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
		On: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "on"),
		),
		Off: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "off"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// destinationKeyMap defines key bindings for the destination editor
type destinationKeyMap struct {
	Next    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k destinationKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Confirm, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k destinationKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Confirm, k.Cancel},
	}
}

func newDestinationKeyMap() destinationKeyMap {
	return destinationKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "up", "down"),
			key.WithHelp("tab", "next field"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
