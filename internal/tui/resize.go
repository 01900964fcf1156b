package tui

import tea "github.com/charmbracelet/bubbletea"

// Resizer asks the embedding surface to re-measure the editor.
// The editor calls it once, when it starts.
type Resizer interface {
	StartAutoResizer() tea.Cmd
}

// TerminalResizer queries the terminal size; later resizes arrive as
// tea.WindowSizeMsg on their own.
type TerminalResizer struct{}

func (TerminalResizer) StartAutoResizer() tea.Cmd { return tea.WindowSize() }
