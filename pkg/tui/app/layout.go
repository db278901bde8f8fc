package teaui

import (
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/casedesk/pkg/tui/events"
)

const (
	sidebarWidth   = 30
	secondaryWidth = 46
	minMainWidth   = 60
	footerRows     = 1
)

type layout struct {
	sidebar   int
	main      int
	secondary int
	body      int
	debug     int
}

// computeLayout splits the screen. The secondary column folds into the main
// column first, then the sidebar disappears.
func (m *Model) computeLayout() layout {
	l := layout{main: m.width}
	if m.width >= sidebarWidth+minMainWidth {
		l.sidebar = sidebarWidth
		l.main -= sidebarWidth
	}
	if l.main >= minMainWidth+secondaryWidth {
		l.secondary = secondaryWidth
		l.main -= secondaryWidth
	}

	m.header.SetSize(m.width, 0)
	rows := m.height - lipgloss.Height(m.header.View()) - footerRows
	if m.eventViewer != nil {
		l.debug = debugHeight(rows)
		if l.debug > 0 {
			m.eventViewer.SetSize(m.width, l.debug)
		}
	}
	l.body = max(rows-l.debug, 1)

	if l.secondary > 0 {
		m.agenda.SetSize(l.secondary, l.body)
	} else {
		m.agenda.SetSize(l.main, 0)
	}
	return l
}

// layout re-applies sizes after the screen or the pane set changed.
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.computeLayout()
	m.scrollMain(0)
}

func debugHeight(rows int) int {
	if rows < 6 {
		return 0
	}
	return min(max(rows/3, 5), 12, rows-1)
}

type section struct {
	id   events.ComponentID
	view string
}

func (m *Model) sections(l layout) []section {
	m.summary.SetSize(l.main, 0)
	m.cases.SetSize(l.main, 0)
	m.feed.SetSize(l.main, 0)
	m.breakdown.SetSize(l.main, 0)

	out := []section{
		{view: m.summary.View()},
		{id: m.cases.ID(), view: m.cases.View()},
		{id: m.feed.ID(), view: m.feed.View()},
		{id: events.Breakdown, view: m.breakdown.View()},
	}
	if l.secondary == 0 {
		out = append(out, section{id: m.agenda.ID(), view: m.agenda.View()})
	}
	return out
}

func (m *Model) mainContent(l layout) string {
	secs := m.sections(l)
	views := make([]string, 0, len(secs))
	for _, s := range secs {
		views = append(views, s.view)
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

func (m *Model) mainView(l layout) string {
	content := m.mainContent(l)
	m.mainOffset = clampOffset(m.mainOffset, lipgloss.Height(content), l.body)
	return clip(content, m.mainOffset, l.body)
}

func clampOffset(offset, content, body int) int {
	maxOffset := max(content-body, 0)
	return min(max(offset, 0), maxOffset)
}

func (m *Model) bodyHeight() int {
	if m.width <= 0 || m.height <= 0 {
		return 0
	}
	return m.computeLayout().body
}

// scrollMain moves the main column by delta lines within its bounds.
func (m *Model) scrollMain(delta int) {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	l := m.computeLayout()
	m.mainOffset = clampOffset(m.mainOffset+delta, lipgloss.Height(m.mainContent(l)), l.body)
}

// revealFocused scrolls the main column so the focused card is in view.
func (m *Model) revealFocused() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	l := m.computeLayout()
	id := m.Focused()
	top := 0
	for _, s := range m.sections(l) {
		h := lipgloss.Height(s.view)
		if s.id == id {
			switch {
			case top < m.mainOffset:
				m.mainOffset = top
			case top+h > m.mainOffset+l.body:
				m.mainOffset = max(top+h-l.body, 0)
				if m.mainOffset > top {
					m.mainOffset = top
				}
			}
			return
		}
		top += h
	}
}

// overlaySize is the help overlay size: most of the screen.
func (m *Model) overlaySize() (int, int) {
	w := max(m.width*9/10, 1)
	h := max(m.height*9/10, 1)
	return w, h
}
