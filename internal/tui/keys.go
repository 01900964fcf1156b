package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Next      key.Binding
	Prev      key.Binding
	Activate  key.Binding
	Hide      key.Binding
	Remove    key.Binding
	Add       key.Binding
	Grab      key.Binding
	Cancel    key.Binding
	Help      key.Binding
	Quit      key.Binding
	DoneInput key.Binding
	ForceQuit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:      key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next control")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev control")),
		Activate:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit/toggle")),
		Hide:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "hide")),
		Remove:    key.NewBinding(key.WithKeys("x", "d", "delete"), key.WithHelp("x", "remove")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Grab:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grab/drop")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		DoneInput: key.NewBinding(key.WithKeys("esc", "ctrl+s"), key.WithHelp("esc", "done")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Hide, k.Add, k.Remove, k.Grab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Activate, k.Hide, k.Add, k.Remove},
		{k.Grab, k.Cancel, k.Help, k.Quit},
	}
}
