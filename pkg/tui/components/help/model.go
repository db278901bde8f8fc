// Package help renders the keyboard reference overlay.
package help

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/casedesk/pkg/tui/ui"
)

//go:embed help.md
var helpMarkdown string

// Model is the keyboard reference overlay: help.md rendered by glamour and
// scrolled in a viewport.
type Model struct {
	viewport viewport.Model
	style    string
	width    int
	height   int

	frame lipgloss.Style
	err   error
}

var _ ui.Component = (*Model)(nil)

// New constructs a help overlay. style is a glamour standard style name such
// as "dark", "light" or "notty".
func New(style string, width, height int) *Model {
	if style == "" {
		style = "dark"
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Margin(0).
		Padding(0)
	m := &Model{
		viewport: viewport.New(1, 1),
		style:    style,
		frame:    frame,
	}
	m.viewport.MouseWheelEnabled = true
	m.SetSize(width, height)
	return m
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements ui.Component.
func (m *Model) View() string {
	body := m.viewport.View()
	if body == "" && m.err != nil {
		body = "help unavailable: " + m.err.Error()
	}
	return m.frame.Width(m.width - m.frame.GetHorizontalBorderSize()).Render(body)
}

// Err returns the markdown rendering error, if any.
func (m *Model) Err() error { return m.err }

// ScrollOffset reports the first visible line.
func (m *Model) ScrollOffset() int { return m.viewport.YOffset }

// SetSize resizes the overlay, never below the minimum, and re-wraps the
// markdown.
func (m *Model) SetSize(width, height int) {
	width = max(width, 32)
	height = max(height, 8)
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height

	innerWidth := max(width-m.frame.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-m.frame.GetVerticalFrameSize(), 1)
	m.viewport.Width = innerWidth
	m.viewport.Height = innerHeight
	m.renderContent(innerWidth)
}

func (m *Model) renderContent(wrap int) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithWordWrap(max(wrap, 10)),
	)
	if err != nil {
		m.fail(err)
		return
	}
	content, err := renderer.Render(strings.TrimSpace(helpMarkdown))
	if err != nil {
		m.fail(err)
		return
	}
	m.err = nil
	m.viewport.SetContent(content)
	m.viewport.SetYOffset(0)
}

func (m *Model) fail(err error) {
	m.err = err
	m.viewport.SetContent("help unavailable: " + err.Error())
}
