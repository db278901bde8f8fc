// Package panel renders the framed cards every dashboard section sits in.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/casedesk/pkg/glyph"
	"tableflip.dev/casedesk/pkg/tui/theme"
)

// Model renders a card with a title row, an optional link on the right and
// body lines underneath a separator.
type Model struct {
	title   string
	link    string
	action  string
	lines   []string
	focused bool
	th      theme.CardTheme
}

// New returns a card using the theme's card styles.
func New(th theme.CardTheme) Model {
	return Model{th: th}
}

// SetContent updates the card title and body lines.
func (m *Model) SetContent(title string, lines []string) {
	m.title = title
	m.lines = lines
}

// SetLink sets the right-aligned call to action, e.g. "Full list".
func (m *Model) SetLink(link string) {
	m.link = link
}

// SetAction sets a right-aligned action marker, e.g. "+", rendered as is.
func (m *Model) SetAction(action string) {
	m.action = action
}

// SetFocused switches the frame highlight.
func (m *Model) SetFocused(f bool) {
	m.focused = f
}

// Reset clears card content.
func (m *Model) Reset() {
	m.title = ""
	m.link = ""
	m.action = ""
	m.lines = nil
}

// InnerWidth is the body width available inside a card of the given outer
// width.
func InnerWidth(th theme.CardTheme, width int) int {
	w := width - th.Frame.GetHorizontalFrameSize()
	if w < 1 {
		return 1
	}
	return w
}

// View renders the card at the given outer width and returns it with its
// height in lines.
func (m Model) View(width int) (string, int) {
	frame := m.th.Frame
	if m.focused {
		frame = m.th.FocusedFrame
	}
	inner := InnerWidth(m.th, width)

	var content []string
	if m.title != "" {
		content = append(content, m.titleRow(inner), m.th.Separator.Render(strings.Repeat("─", inner)))
	}
	for _, line := range m.lines {
		content = append(content, m.th.Body.Render(Fit(line, inner)))
	}
	view := frame.Width(inner + frame.GetHorizontalPadding()).Render(strings.Join(content, "\n"))
	return view, lipgloss.Height(view)
}

func (m Model) titleRow(width int) string {
	title := m.th.Title.Render(m.title)
	var right string
	switch {
	case m.link != "":
		right = m.th.Link.Render(m.link + " " + glyph.Symbol(glyph.MoreLink))
	case m.action != "":
		right = m.th.Link.Render(m.action)
	default:
		return Fit(title, width)
	}
	gap := width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		return Fit(title, width)
	}
	return title + strings.Repeat(" ", gap) + right
}

// Fit truncates s to width cells with an ellipsis, ANSI aware.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// Pad truncates or right-pads s to exactly width cells.
func Pad(s string, width int) string {
	s = Fit(s, width)
	if gap := width - lipgloss.Width(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

// Grid lays cards out side by side, sharing width with one column gap.
// When a column would be narrower than minWidth the cards stack instead.
func Grid(width, minWidth int, cards ...func(width int) string) string {
	if len(cards) == 0 {
		return ""
	}
	col := (width - (len(cards) - 1)) / len(cards)
	if col < minWidth {
		views := make([]string, 0, len(cards))
		for _, card := range cards {
			views = append(views, card(width))
		}
		return lipgloss.JoinVertical(lipgloss.Left, views...)
	}

	views := make([]string, 0, 2*len(cards)-1)
	used := 0
	for i, card := range cards {
		w := col
		if i == len(cards)-1 {
			w = width - used
		}
		if i > 0 {
			views = append(views, " ")
		}
		views = append(views, card(w))
		used += w + 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
