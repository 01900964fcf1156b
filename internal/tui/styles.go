package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/fieldlist/internal/ui"
)

type styles struct {
	glyphs ui.Theme

	title    lipgloss.Style
	success  lipgloss.Style
	pending  lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
	errorMsg lipgloss.Style

	selected lipgloss.Style
	dragging lipgloss.Style
	hidden   lipgloss.Style
	label    lipgloss.Style
	help     lipgloss.Style
	panel    lipgloss.Style
	input    lipgloss.Style
}

func newStyles(theme string) styles {
	g := ui.ThemeNamed(theme)
	s := styles{
		glyphs:   g,
		title:    lipgloss.NewStyle().Bold(true),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		muted:    lipgloss.NewStyle().Faint(true),
		errorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		dragging: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		hidden:   lipgloss.NewStyle().Faint(true).Strikethrough(true),
		label:    lipgloss.NewStyle().Faint(true),
		help:     lipgloss.NewStyle().Faint(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
	}
	switch g.Name {
	case "neon":
		s.title = s.title.Foreground(lipgloss.Color("13"))
		s.accent = s.accent.Foreground(lipgloss.Color("14"))
		s.dragging = s.dragging.Foreground(lipgloss.Color("14"))
		s.panel = s.panel.BorderForeground(lipgloss.Color("13"))
	case "mono":
		plain := lipgloss.NewStyle()
		s.success, s.pending, s.accent = plain, plain, plain
		s.errorMsg = plain.Bold(true)
		s.dragging = plain.Bold(true)
		s.panel = s.panel.Border(lipgloss.NormalBorder()).UnsetBorderForeground()
		s.input = s.input.Border(lipgloss.NormalBorder()).UnsetBorderForeground()
	}
	return s
}
