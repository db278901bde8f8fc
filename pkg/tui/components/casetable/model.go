// Package casetable renders the list of cases awaiting acceptance with
// per-row checkboxes and a tri-state select-all header.
package casetable

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tableflip.dev/casedesk/pkg/glyph"
	"tableflip.dev/casedesk/pkg/record"
	"tableflip.dev/casedesk/pkg/tui/components/panel"
	"tableflip.dev/casedesk/pkg/tui/events"
	"tableflip.dev/casedesk/pkg/tui/theme"
	"tableflip.dev/casedesk/pkg/tui/ui"
	"tableflip.dev/casedesk/pkg/viewstate"
)

const (
	title = "LIST OF CASES TO BE ACCEPTED"

	checkWidth      = 3
	datesWidth      = 27
	priorityWidth   = 8
	attachmentWidth = 18
	assigneeWidth   = 4
	minNameWidth    = 12
)

// KeyMap lists the bindings the table reacts to while focused.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	SelectAll key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys("x", " ", "enter"), key.WithHelp("x", "select")),
		SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
	}
}

// Model is the case list. Row order never changes; a search query only hides
// rows.
type Model struct {
	id      events.ComponentID
	th      theme.Theme
	keys    KeyMap
	log     *zap.Logger
	sel     *viewstate.Selection[record.Case]
	cursor  viewstate.Cursor
	query   string
	focused bool
	width   int
	height  int
}

var _ ui.Focusable = (*Model)(nil)

// NewModel builds the table over cases.
func NewModel(cases []record.Case, th theme.Theme, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Model{
		id:   events.Cases,
		th:   th,
		keys: DefaultKeyMap(),
		log:  log,
		sel:  viewstate.NewSelection(cases),
	}
	m.cursor.SetLen(len(m.Visible()))
	return m
}

// ID implements ui.Focusable.
func (m *Model) ID() events.ComponentID { return m.id }

// Keys returns the active key bindings.
func (m *Model) Keys() KeyMap { return m.keys }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focus implements ui.Focusable.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return events.FocusCmd(m.id)
}

// Blur implements ui.Focusable.
func (m *Model) Blur() tea.Cmd {
	m.focused = false
	return events.BlurCmd(m.id)
}

// Focused implements ui.Focusable.
func (m *Model) Focused() bool { return m.focused }

// Rows returns every case in its original order.
func (m *Model) Rows() []record.Case { return m.sel.Rows() }

// State returns the header checkbox value.
func (m *Model) State() viewstate.Check { return m.sel.State() }

// Cursor returns the highlighted visible row index, or -1.
func (m *Model) Cursor() int { return m.cursor.Index() }

// SetQuery hides rows that do not match query.
func (m *Model) SetQuery(query string) {
	m.query = query
	m.cursor.SetLen(len(m.Visible()))
}

// Visible returns the rows matching the current query.
func (m *Model) Visible() []record.Case {
	return viewstate.Filter(m.sel.Rows(), func(c record.Case) bool { return c.Matches(m.query) })
}

// Toggle flips the case with id.
func (m *Model) Toggle(id string) tea.Cmd {
	if err := m.sel.Toggle(id); err != nil {
		m.log.Debug("case toggle ignored", zap.String("case", id), zap.Error(err))
		return nil
	}
	selected := false
	for _, c := range m.sel.Rows() {
		if c.ID == id {
			selected = c.Selected
			break
		}
	}
	return events.Emit(events.CaseToggleMsg{Component: m.id, CaseID: id, Selected: selected})
}

// ApplyHeader applies a header checkbox value. An indeterminate value is a
// deliberate no-op.
func (m *Model) ApplyHeader(c viewstate.Check) tea.Cmd {
	if err := m.sel.Apply(c); err != nil {
		m.log.Debug("header check ignored", zap.String("check", c.String()), zap.Error(err))
		return nil
	}
	return events.Emit(events.CaseSelectAllMsg{Component: m.id, State: m.sel.State()})
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor.Move(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor.Move(1)
	case key.Matches(keyMsg, m.keys.Toggle):
		rows := m.Visible()
		if i := m.cursor.Index(); i >= 0 {
			return m, m.Toggle(rows[i].ID)
		}
	case key.Matches(keyMsg, m.keys.SelectAll):
		return m, m.ApplyHeader(m.sel.State().Next())
	}
	return m, nil
}

// View implements ui.Component.
func (m *Model) View() string {
	card := panel.New(m.th.Card)
	card.SetLink("Full list")
	card.SetFocused(m.focused)

	inner := panel.InnerWidth(m.th.Card, m.width)
	nameWidth := inner - checkWidth - datesWidth - priorityWidth - attachmentWidth - assigneeWidth - 5
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}

	lines := []string{m.headerRow(nameWidth)}
	rows := m.Visible()
	if len(rows) == 0 {
		lines = append(lines, m.th.Card.Muted.Render("  no matching cases"))
	}
	for i, c := range rows {
		line := m.row(c, nameWidth)
		if m.focused && i == m.cursor.Index() {
			line = m.th.Card.Cursor.Render(line)
		}
		lines = append(lines, line)
	}
	card.SetContent(title, lines)
	view, _ := card.View(m.width)
	return view
}

func checkbox(c viewstate.Check) string {
	switch c {
	case viewstate.Checked:
		return glyph.Symbol(glyph.Checked)
	case viewstate.Indeterminate:
		return glyph.Symbol(glyph.Partial)
	default:
		return glyph.Symbol(glyph.Unchecked)
	}
}

func (m *Model) headerRow(nameWidth int) string {
	cols := []string{
		checkbox(m.sel.State()),
		panel.Pad("NAME", nameWidth),
		panel.Pad("DATES", datesWidth),
		panel.Pad("PRIORITY", priorityWidth),
		panel.Pad("ATTACHMENT", attachmentWidth),
		"USER",
	}
	return m.th.Card.Muted.Render(strings.Join(cols, " "))
}

func (m *Model) row(c record.Case, nameWidth int) string {
	check := viewstate.Unchecked
	if c.Selected {
		check = viewstate.Checked
	}

	attachment := "-"
	if c.Attachment != nil {
		attachment = glyph.Symbol(glyph.Attachment) + " " + c.Attachment.Name
	}
	assignee := glyph.Symbol(glyph.Unassigned)
	if c.Assignee != nil {
		assignee = c.Assignee.Initials
	}

	cols := []string{
		checkbox(check),
		m.th.Card.Strong.Render(panel.Pad(c.Name, nameWidth)),
		m.th.Card.Muted.Render(panel.Pad(c.Dates, datesWidth)),
		panel.Pad(m.th.Priority(c.Priority).Render(string(c.Priority)), priorityWidth),
		m.th.Card.Muted.Render(panel.Pad(attachment, attachmentWidth)),
		panel.Pad(assignee, assigneeWidth),
	}
	return strings.Join(cols, " ")
}
