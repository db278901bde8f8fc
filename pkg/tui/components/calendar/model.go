// Package calendar renders the secondary column: the day-grouped agenda and
// the two task lists.
package calendar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/casedesk/pkg/glyph"
	"tableflip.dev/casedesk/pkg/record"
	"tableflip.dev/casedesk/pkg/tui/components/panel"
	"tableflip.dev/casedesk/pkg/tui/events"
	"tableflip.dev/casedesk/pkg/tui/theme"
	"tableflip.dev/casedesk/pkg/tui/ui"
	"tableflip.dev/casedesk/pkg/viewstate"
)

const (
	agendaTitle = "MY CALENDAR"
	// agendaRows bounds the scrollable agenda area.
	agendaRows = 10
)

// KeyMap lists the agenda bindings.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	}
}

// Model is the agenda plus task lists.
type Model struct {
	id      events.ComponentID
	th      theme.Theme
	keys    KeyMap
	events  []record.Event
	tasks   []record.Task
	vp      viewport.Model
	focused bool
	width   int
	height  int
}

var _ ui.Focusable = (*Model)(nil)

// NewModel builds the column over events and tasks.
func NewModel(evs []record.Event, tasks []record.Task, th theme.Theme) *Model {
	m := &Model{
		id:     events.Agenda,
		th:     th,
		keys:   DefaultKeyMap(),
		events: append([]record.Event(nil), evs...),
		tasks:  append([]record.Task(nil), tasks...),
		vp:     viewport.New(1, 1),
	}
	return m
}

// ID implements ui.Focusable.
func (m *Model) ID() events.ComponentID { return m.id }

// Keys returns the active key bindings.
func (m *Model) Keys() KeyMap { return m.keys }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

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

// Groups returns the events grouped by day in first-seen order.
func (m *Model) Groups() []viewstate.Group[string, record.Event] {
	return viewstate.GroupBy(m.events, func(e record.Event) string { return e.DayGroup })
}

// TaskGroups returns the tasks grouped by owner in first-seen order.
func (m *Model) TaskGroups() []viewstate.Group[record.TaskOwner, record.Task] {
	return viewstate.GroupBy(m.tasks, func(t record.Task) record.TaskOwner { return t.Owner })
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	inner := panel.InnerWidth(m.th.Card, width)
	lines := m.agendaLines(inner)
	m.vp.Width = inner
	m.vp.Height = min(len(lines), agendaRows)
	m.vp.SetContent(strings.Join(lines, "\n"))
}

// ScrollOffset returns the agenda scroll position.
func (m *Model) ScrollOffset() int { return m.vp.YOffset }

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.vp.SetYOffset(m.vp.YOffset - 1)
	case key.Matches(keyMsg, m.keys.Down):
		m.vp.SetYOffset(m.vp.YOffset + 1)
	}
	return m, nil
}

// View implements ui.Component.
func (m *Model) View() string {
	add := glyph.Symbol(glyph.Add)

	agenda := panel.New(m.th.Card)
	agenda.SetAction(add)
	agenda.SetFocused(m.focused)
	agenda.SetContent(agendaTitle, strings.Split(m.vp.View(), "\n"))
	view, _ := agenda.View(m.width)
	blocks := []string{view}

	inner := panel.InnerWidth(m.th.Card, m.width)
	for _, g := range m.TaskGroups() {
		card := panel.New(m.th.Card)
		card.SetAction(add)
		lines := make([]string, 0, len(g.Items))
		for _, t := range g.Items {
			lines = append(lines, m.taskLine(t, inner))
		}
		card.SetContent(g.Key.Title(), lines)
		v, _ := card.View(m.width)
		blocks = append(blocks, v)
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m *Model) agendaLines(width int) []string {
	groups := m.Groups()
	var lines []string
	for i, g := range groups {
		lines = append(lines, m.th.Card.Muted.Bold(true).Render(strings.ToUpper(g.Key)))
		for _, e := range g.Items {
			bar := lipgloss.NewStyle().Foreground(m.th.Palette.Tag(e.Color)).Render(glyph.Symbol(glyph.Bar))
			body := width - 2
			lines = append(lines,
				bar+" "+m.th.Card.Muted.Render(panel.Fit(e.Time, body)),
				bar+" "+m.th.Card.Strong.Render(panel.Fit(e.Title, body)),
				bar+" "+m.th.Card.Muted.Render(panel.Fit(e.Duration, body)),
			)
		}
		if i < len(groups)-1 {
			lines = append(lines, m.th.Card.Separator.Render(strings.Repeat("─", width)))
		}
	}
	return lines
}

func (m *Model) taskLine(t record.Task, width int) string {
	dot := lipgloss.NewStyle().Foreground(m.th.Palette.Tag(t.Color)).Render(glyph.Symbol(glyph.Dot))
	chip := m.th.Card.Chip.Render(t.DueShort)
	name := panel.Pad(t.Name, width-lipgloss.Width(chip)-3)
	return dot + " " + m.th.Card.Body.Render(name) + " " + chip
}
