// Package sidebar renders the navigation column: the main nav with its
// accordion entry and the collapsible recent messages list.
package sidebar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"tableflip.dev/casedesk/pkg/glyph"
	"tableflip.dev/casedesk/pkg/record"
	"tableflip.dev/casedesk/pkg/tui/components/panel"
	"tableflip.dev/casedesk/pkg/tui/events"
	"tableflip.dev/casedesk/pkg/tui/theme"
	"tableflip.dev/casedesk/pkg/tui/ui"
	"tableflip.dev/casedesk/pkg/viewstate"
)

// RecentKey names the recent messages disclosure region.
const RecentKey = "recent-messages"

// KeyMap lists the sidebar bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Activate: key.NewBinding(key.WithKeys("enter", "x", " "), key.WithHelp("enter", "open")),
	}
}

// RowKind tells what a sidebar row represents.
type RowKind int

const (
	RowEntry RowKind = iota
	RowChild
	RowRecentHeader
	RowRecent
)

// Row is one rendered sidebar line that the cursor can rest on.
type Row struct {
	Kind   RowKind
	Entry  record.NavEntry
	Person record.Person
}

// Model is the navigation sidebar. The accordion is owned by the caller and
// shared by reference; the recent messages flag belongs to the sidebar.
type Model struct {
	id        events.ComponentID
	th        theme.Theme
	keys      KeyMap
	log       *zap.Logger
	nav       []record.NavEntry
	recent    []record.Person
	accordion *viewstate.Accordion
	regions   *viewstate.Disclosures
	cursor    viewstate.Cursor
	focused   bool
	width     int
	height    int
}

var _ ui.Focusable = (*Model)(nil)

// NewModel builds the sidebar. Recent messages start open.
func NewModel(nav []record.NavEntry, recent []record.Person, accordion *viewstate.Accordion, th theme.Theme, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Model{
		id:        events.Sidebar,
		th:        th,
		keys:      DefaultKeyMap(),
		log:       log,
		nav:       append([]record.NavEntry(nil), nav...),
		recent:    append([]record.Person(nil), recent...),
		accordion: accordion,
		regions:   viewstate.NewDisclosures(map[string]bool{RecentKey: true}),
	}
	m.cursor.SetLen(len(m.Rows()))
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

// RecentOpen reports whether the recent messages list is shown.
func (m *Model) RecentOpen() bool { return m.regions.IsOpen(RecentKey) }

// Cursor returns the highlighted row index.
func (m *Model) Cursor() int { return m.cursor.Index() }

// Rows derives the navigable rows from the nav tree and disclosure state.
func (m *Model) Rows() []Row {
	var rows []Row
	for _, e := range m.nav {
		rows = append(rows, Row{Kind: RowEntry, Entry: e})
		if e.Kind() == record.NavExpandable && m.accordion.IsOpen(e.ID) {
			for _, c := range e.Children() {
				rows = append(rows, Row{Kind: RowChild, Entry: c})
			}
		}
	}
	rows = append(rows, Row{Kind: RowRecentHeader})
	if m.RecentOpen() {
		for _, p := range m.recent {
			rows = append(rows, Row{Kind: RowRecent, Person: p})
		}
	}
	return rows
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
	case key.Matches(keyMsg, m.keys.Activate):
		return m, m.activate()
	}
	return m, nil
}

func (m *Model) activate() tea.Cmd {
	rows := m.Rows()
	i := m.cursor.Index()
	if i < 0 {
		return nil
	}
	row := rows[i]
	defer m.cursor.SetLen(len(m.Rows()))

	switch row.Kind {
	case RowEntry, RowChild:
		if row.Entry.Kind() == record.NavExpandable {
			if err := m.accordion.Toggle(row.Entry.ID); err != nil {
				m.log.Debug("accordion toggle ignored", zap.String("key", row.Entry.ID), zap.Error(err))
				return nil
			}
			return events.Emit(events.DisclosureMsg{Component: m.id, Key: row.Entry.ID, Open: m.accordion.IsOpen(row.Entry.ID)})
		}
		return events.Emit(events.NavSelectMsg{Component: m.id, ID: row.Entry.ID, Href: row.Entry.Href})
	case RowRecentHeader:
		if err := m.regions.Toggle(RecentKey); err != nil {
			m.log.Debug("recent toggle ignored", zap.Error(err))
			return nil
		}
		return events.Emit(events.DisclosureMsg{Component: m.id, Key: RecentKey, Open: m.RecentOpen()})
	}
	return nil
}

// View implements ui.Component.
func (m *Model) View() string {
	inner := m.width - m.th.Sidebar.Frame.GetHorizontalFrameSize()
	if inner < 8 {
		inner = 8
	}

	lines := []string{
		m.th.Sidebar.Logo.Render(glyph.Symbol(glyph.Logo) + " Dashboard"),
		"",
		m.th.Sidebar.Section.Render("MAIN"),
	}
	for i, row := range m.Rows() {
		if row.Kind == RowRecentHeader {
			lines = append(lines, "")
		}
		line := m.renderRow(row, inner)
		if m.focused && i == m.cursor.Index() {
			line = m.th.Sidebar.Cursor.Render(panel.Pad(m.rowText(row, inner), inner))
		}
		lines = append(lines, line)
	}

	frame := m.th.Sidebar.Frame.Width(inner + m.th.Sidebar.Frame.GetHorizontalPadding())
	if m.height > 0 {
		frame = frame.Height(m.height)
	}
	return frame.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderRow(row Row, width int) string {
	text := panel.Pad(m.rowText(row, width), width)
	sb := m.th.Sidebar
	switch row.Kind {
	case RowEntry:
		e := row.Entry
		switch {
		case e.Kind() == record.NavExpandable && m.accordion.IsOpen(e.ID):
			return sb.ItemOpen.Render(text)
		case e.Kind() == record.NavExpandable && e.HasActiveChild():
			return sb.ItemHinted.Render(text)
		case e.Active:
			return sb.ItemActive.Render(text)
		}
		if e.Badge != "" {
			label := panel.Pad(m.entryLabel(e), width-lipgloss.Width(e.Badge)-2)
			return sb.Item.Render(label) + sb.Badge.Render(e.Badge)
		}
		return sb.Item.Render(text)
	case RowChild:
		if row.Entry.Active {
			return sb.ItemActive.Render(text)
		}
		return sb.SubItem.Render(text)
	case RowRecentHeader:
		return sb.Section.Render(text)
	case RowRecent:
		avatar := sb.Avatar.Render(row.Person.Initials)
		return avatar + " " + sb.RecentEntry.Render(panel.Pad(row.Person.Name, width-lipgloss.Width(avatar)-1))
	}
	return text
}

func (m *Model) entryLabel(e record.NavEntry) string {
	return glyph.Symbol(e.Icon) + " " + e.Label
}

func (m *Model) rowText(row Row, width int) string {
	switch row.Kind {
	case RowEntry:
		e := row.Entry
		label := m.entryLabel(e)
		var right string
		switch {
		case e.Kind() == record.NavExpandable && m.accordion.IsOpen(e.ID):
			right = glyph.Symbol(glyph.Expanded)
		case e.Kind() == record.NavExpandable:
			right = glyph.Symbol(glyph.Collapsed)
		case e.Badge != "":
			right = e.Badge
		}
		if right == "" {
			return label
		}
		gap := width - lipgloss.Width(label) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
		return label + strings.Repeat(" ", gap) + right
	case RowChild:
		return "   " + row.Entry.Label
	case RowRecentHeader:
		marker := glyph.Symbol(glyph.Collapsed)
		if m.RecentOpen() {
			marker = glyph.Symbol(glyph.Expanded)
		}
		label := "RECENT MESSAGES"
		gap := width - lipgloss.Width(label) - lipgloss.Width(marker)
		if gap < 1 {
			gap = 1
		}
		return label + strings.Repeat(" ", gap) + marker
	case RowRecent:
		return row.Person.Initials + " " + row.Person.Name
	}
	return ""
}
