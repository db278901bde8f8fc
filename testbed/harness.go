package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/casedesk/pkg/tui/components/eventviewer"
	"tableflip.dev/casedesk/pkg/tui/theme"
	"tableflip.dev/casedesk/pkg/tui/ui"
)

type harness struct {
	opts    options
	th      theme.Theme
	subject subject
	events  *eventviewer.Model

	termWidth  int
	termHeight int
	frame      frame
}

func newHarness(opts options, th theme.Theme, s subject) *harness {
	return &harness{
		opts:    opts,
		th:      th,
		subject: s,
		events:  eventviewer.NewModel(400, th),
	}
}

func (m *harness) focusable() (ui.Focusable, bool) {
	f, ok := m.subject.component.(ui.Focusable)
	return f, ok
}

func (m *harness) Init() tea.Cmd { return m.subject.component.Init() }

func (m *harness) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if entry, ok := eventviewer.FromMsg(msg, time.Now()); ok {
		m.events.Append(entry)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.frame = layoutFrame(m.opts, msg.Width, msg.Height)
		m.subject.component.SetSize(m.frame.innerWidth, m.frame.innerHeight)
		m.events.SetSize(msg.Width, m.frame.eventHeight)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *harness) handleKey(msg tea.KeyMsg) tea.Cmd {
	f, isFocusable := m.focusable()
	if isFocusable && msg.String() == "tab" {
		if f.Focused() {
			return f.Blur()
		}
		return f.Focus()
	}
	if m.subject.keys != nil {
		if cmd, handled := m.subject.keys(msg); handled {
			return cmd
		}
	}
	if msg.String() == "q" && !(isFocusable && f.Focused()) {
		return tea.Quit
	}
	_, cmd := m.subject.component.Update(msg)
	return cmd
}

func (m *harness) View() string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "Resizing…"
	}
	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(m.th.Palette.Border)
	if f, ok := m.focusable(); ok && f.Focused() {
		border = border.BorderForeground(m.th.Palette.Primary)
	}
	content := lipgloss.NewStyle().
		Width(m.frame.innerWidth).
		Height(m.frame.innerHeight).
		MaxHeight(m.frame.innerHeight).
		Render(m.subject.component.View())
	framed := lipgloss.Place(m.termWidth, m.frame.height+2, lipgloss.Center, lipgloss.Top, border.Render(content))
	if m.frame.eventHeight == 0 {
		return framed
	}
	return lipgloss.JoinVertical(lipgloss.Left, framed, "", m.events.View())
}
