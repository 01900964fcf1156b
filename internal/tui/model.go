package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/fieldlist/internal/field"
	"github.com/idilsaglam/fieldlist/internal/model"
	"github.com/idilsaglam/fieldlist/internal/sortable"
)

// column is the focused control inside a row.
type column int

const (
	colTitle column = iota
	colContent
	colHide
	colRemove
	numColumns
)

func (c column) String() string {
	switch c {
	case colTitle:
		return "title"
	case colContent:
		return "content"
	case colHide:
		return "hide"
	case colRemove:
		return "remove"
	}
	return "?"
}

type Options struct {
	Theme   string
	Resizer Resizer
	Logger  *slog.Logger
	Label   string // shown in the header, e.g. the store location
}

// Model is the interactive editor. Rows are re-derived from the controller
// on every render; the model itself holds only cursor and input state.
type Model struct {
	ctrl    *field.Controller
	resizer Resizer
	log     *slog.Logger
	label   string

	keys   keyMap
	help   help.Model
	styles styles

	title   textinput.Model
	content textarea.Model
	editing bool

	drag   sortable.Drag
	cursor int // len(items) is the add control
	col    column

	width, height int
	status        string
	err           string
}

func New(ctrl *field.Controller, opt Options) Model {
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Title"
	ti.CharLimit = 0

	ta := textarea.New()
	ta.Placeholder = "Content"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(3)

	return Model{
		ctrl:    ctrl,
		resizer: opt.Resizer,
		log:     log,
		label:   opt.Label,
		keys:    defaultKeys(),
		help:    help.New(),
		styles:  newStyles(opt.Theme),
		title:   ti,
		content: ta,
		width:   80,
		height:  24,
	}
}

// Init asks the host to re-measure once; mutations never do.
func (m Model) Init() tea.Cmd {
	if m.resizer == nil {
		return nil
	}
	return m.resizer.StartAutoResizer()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.title.Width = max(10, msg.Width-12)
		m.content.SetWidth(max(10, msg.Width-8))
		return m, nil

	case sortable.SortEndMsg:
		err := Reorder(m.ctrl, msg)
		m.report(err, "moved")
		if err == nil {
			m.cursor = msg.NewIndex
		}
		m.log.Debug("reorder", "from", msg.OldIndex, "to", msg.NewIndex)
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		if m.drag.Active() {
			return m.updateDragging(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := BuildRows(m.ctrl, &m.drag)
	onAdd := m.cursor >= len(rows)
	m.err = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows) {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Next):
		m.col = (m.col + 1) % numColumns
	case key.Matches(msg, m.keys.Prev):
		m.col = (m.col + numColumns - 1) % numColumns
	case key.Matches(msg, m.keys.Add):
		m.add()
	case onAdd && key.Matches(msg, m.keys.Activate):
		m.add()
	case onAdd:
	case key.Matches(msg, m.keys.Activate):
		return m.activate(rows[m.cursor])
	case key.Matches(msg, m.keys.Hide):
		row := rows[m.cursor]
		m.report(row.SetHide(!row.Item.Hide), "hide toggled")
	case key.Matches(msg, m.keys.Remove):
		m.report(rows[m.cursor].Remove(), "removed")
	case key.Matches(msg, m.keys.Grab):
		rows[m.cursor].BeginDrag()
		m.status = "dragging: ↑/↓ to move, enter or g to drop, esc to cancel"
	}
	return m, nil
}

func (m *Model) add() {
	m.report(AddControl(m.ctrl)(), "added")
	m.cursor = m.ctrl.Len() - 1
	m.col = colTitle
}

func (m Model) activate(row Row) (tea.Model, tea.Cmd) {
	switch m.col {
	case colTitle:
		m.title.SetValue(row.Item.Title)
		if m.title.Value() != row.Item.Title {
			m.refuseEdit(row)
			return m, nil
		}
		m.editing = true
		m.title.CursorEnd()
		cmd := m.title.Focus()
		return m, cmd
	case colContent:
		m.content.SetValue(row.Item.Content)
		if m.content.Value() != row.Item.Content {
			m.refuseEdit(row)
			return m, nil
		}
		m.editing = true
		cmd := m.content.Focus()
		return m, cmd
	case colHide:
		m.report(row.SetHide(!row.Item.Hide), "hide toggled")
	case colRemove:
		m.report(row.Remove(), "removed")
	}
	return m, nil
}

// refuseEdit leaves a value alone when the input widget would alter it on load
// (tabs, control characters, a title spanning lines).
func (m *Model) refuseEdit(row Row) {
	m.title.SetValue("")
	m.content.SetValue("")
	m.err = fmt.Sprintf("#%d %s cannot be edited here without changing it; use `fieldlist set`", row.Index+1, m.col)
	m.log.Warn("edit refused", "index", row.Index, "field", m.col.String())
}

// updateEditing forwards keys to the focused input and commits after every
// keystroke that changes its value.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.stopEditing()
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.DoneInput) || (m.col == colTitle && msg.Type == tea.KeyEnter) {
		m.stopEditing()
		return m, nil
	}
	rows := BuildRows(m.ctrl, &m.drag)
	if m.cursor >= len(rows) {
		m.stopEditing()
		return m, nil
	}
	row := rows[m.cursor]

	var cmd tea.Cmd
	switch m.col {
	case colTitle:
		before := m.title.Value()
		m.title, cmd = m.title.Update(msg)
		if v := m.title.Value(); v != before {
			m.report(row.SetTitle(v), "")
		}
	case colContent:
		before := m.content.Value()
		m.content, cmd = m.content.Update(msg)
		if v := m.content.Value(); v != before {
			m.report(row.SetContent(v), "")
		}
	}
	return m, cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.title.Blur()
	m.content.Blur()
	m.status = "saved"
}

func (m Model) updateDragging(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.drag.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.drag.Move(1)
	case key.Matches(msg, m.keys.Activate), key.Matches(msg, m.keys.Grab):
		m.status = ""
		cmd := m.drag.Release()
		return m, cmd
	case key.Matches(msg, m.keys.Cancel):
		m.drag.Cancel()
		m.status = "drag cancelled"
	case key.Matches(msg, m.keys.Quit):
		m.drag.Cancel()
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) report(err error, ok string) {
	if err != nil {
		m.err = err.Error()
		m.log.Warn("edit rejected", "err", err)
		return
	}
	if ok != "" {
		m.status = ok
	}
}

// ---------------------------------------------------
// View
// ---------------------------------------------------

func (m Model) View() string {
	items := m.ctrl.Items()
	var b strings.Builder

	b.WriteString(m.header(items))
	b.WriteString("\n\n")

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	if m.drag.Active() {
		order = previewOrder(len(items), m.drag.From(), m.drag.Over())
	}

	if len(items) == 0 {
		b.WriteString(m.styles.muted.Render("  no items yet, press a to add one"))
		b.WriteString("\n")
	}
	for pos, idx := range order {
		b.WriteString(m.renderRow(pos, idx, items[idx]))
		b.WriteString("\n")
	}

	add := "[ + Add new ]"
	if !m.drag.Active() && m.cursor >= len(items) {
		add = m.styles.selected.Render(add)
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(max(m.width-6, lipgloss.Width(add)), lipgloss.Right, add))
	b.WriteString("\n")

	if m.editing {
		heading := "Edit " + m.col.String()
		input := m.title.View()
		if m.col == colContent {
			input = m.content.View()
		}
		b.WriteString(m.styles.input.Render(heading + "\n" + input))
		b.WriteString("\n")
	}

	if m.err != "" {
		b.WriteString(m.styles.errorMsg.Render("✖ " + m.err))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styles.muted.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.help.Render(m.help.View(m.keys)))

	return m.styles.panel.Render(b.String())
}

func (m Model) header(items []model.Item) string {
	visible, hidden := model.Stats(items)
	g := m.styles.glyphs
	h := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.styles.title.Render("Items"),
		m.styles.success.Render(g.BoxShown), visible,
		m.styles.pending.Render(g.BoxHidden), hidden,
		m.styles.accent.Render("Total"), len(items),
	)
	if m.label != "" {
		h += "  " + m.styles.muted.Render(m.label)
	}
	return h
}

func (m Model) renderRow(pos, idx int, it model.Item) string {
	s := m.styles
	g := s.glyphs
	dragged := m.drag.Active() && idx == m.drag.From()
	current := !m.drag.Active() && pos == m.cursor

	cell := func(c column, text string) string {
		if current && m.col == c {
			return s.selected.Render(text)
		}
		return text
	}

	titleW, contentW := m.columnWidths()

	title := it.Title
	if title == "" {
		title = s.muted.Render("(title required)")
	} else {
		title = runewidth.Truncate(title, titleW, "…")
	}
	title = padRight(title, titleW)

	content := it.Content
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		content = content[:i] + " …"
	}
	content = padRight(runewidth.Truncate(content, contentW, "…"), contentW)
	if it.Hide {
		title = s.hidden.Render(title)
		content = s.hidden.Render(content)
	}

	box := g.BoxShown
	if it.Hide {
		box = g.BoxHidden
	}

	handle := s.muted.Render(g.Handle)
	prefix := "  "
	if current {
		prefix = s.selected.Render("> ")
	}
	if dragged {
		handle = s.dragging.Render(g.Handle)
		prefix = s.dragging.Render("» ")
	}

	return fmt.Sprintf("%s%s %s %s  %s %s  %s %s  %s",
		prefix, handle,
		s.label.Render("Title"), cell(colTitle, title),
		s.label.Render("Content"), cell(colContent, content),
		s.label.Render("Hide"), cell(colHide, box),
		cell(colRemove, "✖"),
	)
}

func (m Model) columnWidths() (title, content int) {
	title = 20
	// prefix, handle, labels, hide box, remove and gaps
	content = m.width - title - 44
	if content < 10 {
		content = 10
	}
	return title, content
}

func padRight(s string, w int) string {
	if vis := lipgloss.Width(s); vis < w {
		return s + strings.Repeat(" ", w-vis)
	}
	return s
}

// previewOrder is the display order while row from hovers over row to.
func previewOrder(n, from, to int) []int {
	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if i != from {
			order = append(order, i)
		}
	}
	out := make([]int, 0, n)
	out = append(out, order[:to]...)
	out = append(out, from)
	out = append(out, order[to:]...)
	return out
}

// Commits reports how many changes were written while the editor ran.
func (m Model) Commits() int { return m.ctrl.Commits() }

// Run starts the editor in the alternate screen and blocks until quit.
func Run(ctrl *field.Controller, opt Options) (Model, error) {
	if opt.Resizer == nil {
		opt.Resizer = TerminalResizer{}
	}
	p := tea.NewProgram(New(ctrl, opt), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}
	fm, ok := final.(Model)
	if !ok {
		return Model{}, fmt.Errorf("unexpected final model %T", final)
	}
	return fm, nil
}
