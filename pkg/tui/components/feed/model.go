// Package feed renders the communication feed of recent messages.
package feed

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"tableflip.dev/casedesk/pkg/glyph"
	"tableflip.dev/casedesk/pkg/record"
	"tableflip.dev/casedesk/pkg/tui/components/panel"
	"tableflip.dev/casedesk/pkg/tui/events"
	"tableflip.dev/casedesk/pkg/tui/theme"
	"tableflip.dev/casedesk/pkg/tui/ui"
	"tableflip.dev/casedesk/pkg/viewstate"
)

const title = "COMMUNICATION (Last 7 days)"

// KeyMap lists the feed bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Expand key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Expand: key.NewBinding(key.WithKeys("enter", "x", " "), key.WithHelp("enter", "expand")),
	}
}

// Model lists messages. Each message can be expanded on its own to show the
// full snippet.
type Model struct {
	id       events.ComponentID
	th       theme.Theme
	keys     KeyMap
	log      *zap.Logger
	messages []record.Message
	expanded *viewstate.Disclosures
	cursor   viewstate.Cursor
	query    string
	focused  bool
	width    int
	height   int
}

var _ ui.Focusable = (*Model)(nil)

// NewModel builds the feed.
func NewModel(messages []record.Message, th theme.Theme, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	regions := make(map[string]bool, len(messages))
	for _, msg := range messages {
		regions[msg.ID] = false
	}
	m := &Model{
		id:       events.Feed,
		th:       th,
		keys:     DefaultKeyMap(),
		log:      log,
		messages: append([]record.Message(nil), messages...),
		expanded: viewstate.NewDisclosures(regions),
	}
	m.cursor.SetLen(len(m.messages))
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

// HasNew reports whether any message is unread.
func (m *Model) HasNew() bool {
	for _, msg := range m.messages {
		if msg.IsNew {
			return true
		}
	}
	return false
}

// SetQuery hides messages that do not match query.
func (m *Model) SetQuery(query string) {
	m.query = query
	m.cursor.SetLen(len(m.Visible()))
}

// Visible returns the messages matching the current query.
func (m *Model) Visible() []record.Message {
	return viewstate.Filter(m.messages, func(msg record.Message) bool { return msg.Matches(m.query) })
}

// Expanded reports whether the message with id shows its full snippet.
func (m *Model) Expanded(id string) bool { return m.expanded.IsOpen(id) }

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
	case key.Matches(keyMsg, m.keys.Expand):
		visible := m.Visible()
		i := m.cursor.Index()
		if i < 0 {
			return m, nil
		}
		id := visible[i].ID
		if err := m.expanded.Toggle(id); err != nil {
			m.log.Debug("feed expand ignored", zap.String("message", id), zap.Error(err))
			return m, nil
		}
		return m, events.Emit(events.DisclosureMsg{Component: m.id, Key: id, Open: m.expanded.IsOpen(id)})
	}
	return m, nil
}

// View implements ui.Component.
func (m *Model) View() string {
	card := panel.New(m.th.Card)
	card.SetLink("See all")
	card.SetFocused(m.focused)
	inner := panel.InnerWidth(m.th.Card, m.width)

	var lines []string
	visible := m.Visible()
	if len(visible) == 0 {
		lines = append(lines, m.th.Card.Muted.Render("no matching messages"))
	}
	for i, msg := range visible {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, m.message(msg, inner, m.focused && i == m.cursor.Index())...)
	}
	card.SetContent(title, lines)
	view, _ := card.View(m.width)
	return view
}

func (m *Model) message(msg record.Message, width int, highlighted bool) []string {
	avatar := m.th.Card.Avatar.Render(msg.Sender.Initials)
	indent := lipgloss.Width(avatar) + 1
	body := width - indent
	if body < 1 {
		body = 1
	}

	stamp := m.th.Card.Muted.Render(msg.Timestamp)
	if msg.IsNew {
		stamp += m.th.Header.Notification.Render(" " + glyph.Symbol(glyph.New))
	}
	name := m.th.Card.Strong.Render(panel.Fit(msg.Sender.Name, body-lipgloss.Width(stamp)-1))
	if highlighted {
		name = m.th.Card.Cursor.Render(msg.Sender.Name)
	}
	gap := body - lipgloss.Width(name) - lipgloss.Width(stamp)
	if gap < 1 {
		gap = 1
	}
	head := avatar + " " + name + strings.Repeat(" ", gap) + stamp

	pad := strings.Repeat(" ", indent)
	if !m.expanded.IsOpen(msg.ID) {
		return []string{head, pad + m.th.Card.Muted.Render(panel.Fit(msg.Snippet, body))}
	}
	lines := []string{head}
	for _, l := range strings.Split(wordwrap.String(msg.Snippet, body), "\n") {
		lines = append(lines, pad+m.th.Card.Muted.Render(l))
	}
	return lines
}
