// Package eventviewer renders the debug pane listing the events dashboard
// components emitted, newest first.
package eventviewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/casedesk/pkg/tui/components/panel"
	"tableflip.dev/casedesk/pkg/tui/events"
	"tableflip.dev/casedesk/pkg/tui/theme"
	"tableflip.dev/casedesk/pkg/tui/ui"
)

const (
	title       = "EVENTS"
	sourceWidth = 9
	// chrome is the border, title row and separator around the list.
	chrome = 4
)

// Level indicates the severity of a logged event.
type Level int

const (
	// LevelInfo is the default severity.
	LevelInfo Level = iota
	// LevelWarn highlights rejected interactions.
	LevelWarn
)

// Entry captures a rendered event.
type Entry struct {
	Timestamp time.Time
	Source    string
	Summary   string
	Detail    string
	Level     Level
}

// FromMsg builds an entry from a component event. ok is false for messages
// that are not dashboard events.
func FromMsg(msg tea.Msg, now time.Time) (Entry, bool) {
	d, ok := msg.(events.Describer)
	if !ok {
		return Entry{}, false
	}
	entry := Entry{
		Timestamp: now,
		Summary:   strings.TrimSuffix(strings.TrimPrefix(fmt.Sprintf("%T", msg), "events."), "Msg"),
		Detail:    d.Describe(),
	}
	if src, ok := events.SourceOf(msg); ok {
		entry.Source = string(src)
	}
	if _, ok := msg.(events.DebugMsg); ok {
		entry.Level = LevelWarn
	}
	return entry, true
}

// Model is a capped log of events shown newest first inside a card.
type Model struct {
	th      theme.Theme
	warn    lipgloss.Style
	list    viewport.Model
	entries []Entry // oldest first
	limit   int
	width   int
	height  int
}

var _ ui.Component = (*Model)(nil)

// NewModel keeps at most limit entries.
func NewModel(limit int, th theme.Theme) *Model {
	if limit <= 0 {
		limit = 200
	}
	return &Model{
		th:    th,
		warn:  lipgloss.NewStyle().Foreground(th.Palette.Warning),
		list:  viewport.New(1, 1),
		limit: limit,
	}
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component. The pane never takes input.
func (m *Model) Update(tea.Msg) (ui.Component, tea.Cmd) { return m, nil }

// SetSize implements ui.Component. height includes the card chrome.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 8)
	m.height = max(height, chrome+1)
	m.list.Width = panel.InnerWidth(m.th.Card, m.width)
	m.list.Height = m.height - chrome
	m.render()
}

// Len reports how many entries are kept.
func (m *Model) Len() int { return len(m.entries) }

// Append records entry, dropping the oldest past the limit, and scrolls back
// to the newest.
func (m *Model) Append(entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.Source == "" {
		entry.Source = "ui"
	}
	m.entries = append(m.entries, entry)
	if over := len(m.entries) - m.limit; over > 0 {
		m.entries = m.entries[over:]
	}
	m.render()
	m.list.GotoTop()
}

// View implements ui.Component.
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}
	card := panel.New(m.th.Card)
	card.SetContent(fmt.Sprintf("%s (%d)", title, len(m.entries)), strings.Split(m.list.View(), "\n"))
	view, _ := card.View(m.width)
	return view
}

func (m *Model) render() {
	if len(m.entries) == 0 {
		m.list.SetContent(m.th.Card.Muted.Render("No events yet"))
		return
	}
	lines := make([]string, 0, len(m.entries))
	for i := len(m.entries) - 1; i >= 0; i-- {
		lines = append(lines, m.line(m.entries[i]))
	}
	m.list.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) line(e Entry) string {
	text := e.Summary
	if e.Detail != "" {
		text += " " + e.Detail
	}
	style := m.th.Card.Body
	if e.Level == LevelWarn {
		style = m.warn
	}
	prefix := m.th.Card.Muted.Render(e.Timestamp.Format("15:04:05") + " " + panel.Pad(e.Source, sourceWidth))
	return panel.Fit(prefix+" "+style.Render(text), m.list.Width)
}
