// Package teaui hosts the Bubble Tea program for the casedesk dashboard.
package teaui

import (
	"fmt"
	"strings"
	"time"

	bhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"tableflip.dev/casedesk/pkg/record"
	"tableflip.dev/casedesk/pkg/tui/components/breakdown"
	"tableflip.dev/casedesk/pkg/tui/components/calendar"
	"tableflip.dev/casedesk/pkg/tui/components/casetable"
	"tableflip.dev/casedesk/pkg/tui/components/eventviewer"
	"tableflip.dev/casedesk/pkg/tui/components/feed"
	"tableflip.dev/casedesk/pkg/tui/components/header"
	"tableflip.dev/casedesk/pkg/tui/components/help"
	"tableflip.dev/casedesk/pkg/tui/components/performance"
	"tableflip.dev/casedesk/pkg/tui/components/sidebar"
	"tableflip.dev/casedesk/pkg/tui/events"
	"tableflip.dev/casedesk/pkg/tui/theme"
	"tableflip.dev/casedesk/pkg/tui/ui"
	"tableflip.dev/casedesk/pkg/viewstate"
)

// Options configures the dashboard.
type Options struct {
	// Data is rendered as is; nil means record.Sample().
	Data *record.Dataset
	// Profile overrides the dataset profile when its Name is set.
	Profile record.Profile
	// Theme defaults to theme.Default().
	Theme *theme.Theme
	// HelpStyle is the glamour style for the help overlay.
	HelpStyle string
	Logger    *zap.Logger
	// Now stamps debug pane entries; nil means time.Now.
	Now func() time.Time
}

// Model composes the dashboard: header on top, sidebar on the left, the
// scrolling main column and the sticky secondary column on the right.
type Model struct {
	log  *zap.Logger
	th   theme.Theme
	keys KeyMap
	now  func() time.Time

	width  int
	height int

	accordion *viewstate.Accordion
	focus     *ui.FocusRing

	header    *header.Model
	sidebar   *sidebar.Model
	summary   *performance.Model
	cases     *casetable.Model
	feed      *feed.Model
	breakdown *breakdown.Model
	agenda    *calendar.Model

	footer bhelp.Model

	helpStyle   string
	helpOverlay *help.Model
	helpVisible bool

	eventViewer *eventviewer.Model

	mainOffset int
}

// New builds the dashboard. The accordion starts on the nav entry that holds
// the current page.
func New(opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	data := opts.Data
	if data == nil {
		data = record.Sample()
	}
	profile := data.Profile
	if opts.Profile.Name != "" {
		profile = opts.Profile
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}

	accordion := viewstate.NewAccordion(record.ExpandableIDs(data.Nav), record.DefaultExpanded(data.Nav))
	m := &Model{
		log:       log,
		th:        th,
		keys:      DefaultKeyMap(),
		now:       now,
		accordion: accordion,
		sidebar:   sidebar.NewModel(data.Nav, data.Recent, accordion, th, log.Named("sidebar")),
		summary:   performance.NewModel(profile, data.Metrics, th),
		cases:     casetable.NewModel(data.Cases, th, log.Named("cases")),
		feed:      feed.NewModel(data.Messages, th, log.Named("feed")),
		breakdown: breakdown.NewModel(data.CaseTypes, data.Countries, th),
		agenda:    calendar.NewModel(data.Events, data.Tasks, th),
		footer:    bhelp.New(),
		helpStyle: opts.HelpStyle,
	}
	m.header = header.NewModel(profile, m.feed.HasNew(), th, log.Named("header"))
	m.focus = ui.NewFocusRing(m.sidebar, m.cases, m.feed, m.agenda)
	return m
}

// Run launches the Bubble Tea program on the alternate screen.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Accordion exposes the navigation accordion owned by the dashboard.
func (m *Model) Accordion() *viewstate.Accordion { return m.accordion }

// Focused returns the component holding keyboard focus.
func (m *Model) Focused() events.ComponentID {
	if cur := m.focus.Current(); cur != nil {
		return cur.ID()
	}
	return ""
}

// Cases exposes the case table.
func (m *Model) Cases() *casetable.Model { return m.cases }

// Feed exposes the communication feed.
func (m *Model) Feed() *feed.Model { return m.feed }

// Header exposes the header.
func (m *Model) Header() *header.Model { return m.header }

// HelpVisible reports whether the help overlay is shown.
func (m *Model) HelpVisible() bool { return m.helpVisible }

// DebugVisible reports whether the event pane is shown.
func (m *Model) DebugVisible() bool { return m.eventViewer != nil }

// MainOffset is the main column scroll position in lines.
func (m *Model) MainOffset() int { return m.mainOffset }

// Update routes messages: global keys first, then the search box while it is
// active, then the focused component.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.noteEvent(msg)

	var cmds []tea.Cmd
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.layout()
	case tea.KeyMsg:
		if v.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.header.Mode() == header.ModeSearch:
			m.handleSearchKey(v, &cmds)
		case m.helpVisible:
			m.handleHelpKey(v, &cmds)
		default:
			if quit := m.handleNormalKey(v, &cmds); quit {
				return m, tea.Quit
			}
		}
	}

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleSearchKey(msg tea.KeyMsg, cmds *[]tea.Cmd) {
	_, cmd := m.header.Update(msg)
	appendCmd(cmds, cmd)
	m.cases.SetQuery(m.header.Query())
	m.feed.SetQuery(m.header.Query())
}

func (m *Model) handleHelpKey(msg tea.KeyMsg, cmds *[]tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Quit):
		m.helpVisible = false
		return
	}
	if m.helpOverlay != nil {
		_, cmd := m.helpOverlay.Update(msg)
		appendCmd(cmds, cmd)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyMsg, cmds *[]tea.Cmd) bool {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return true
	case key.Matches(msg, m.keys.Next):
		appendCmd(cmds, m.focus.Next(1))
		m.revealFocused()
	case key.Matches(msg, m.keys.Prev):
		appendCmd(cmds, m.focus.Next(-1))
		m.revealFocused()
	case key.Matches(msg, m.keys.Search):
		appendCmd(cmds, m.header.BeginSearch())
	case key.Matches(msg, m.keys.Profile):
		appendCmd(cmds, m.header.ToggleMenu())
	case key.Matches(msg, m.keys.Close):
		if m.header.MenuOpen() {
			appendCmd(cmds, m.header.ToggleMenu())
		}
	case key.Matches(msg, m.keys.Help):
		m.openHelp()
	case key.Matches(msg, m.keys.Debug):
		m.toggleDebug()
	case key.Matches(msg, m.keys.PageDown):
		m.scrollMain(m.bodyHeight() / 2)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollMain(-m.bodyHeight() / 2)
	default:
		if cur := m.focus.Current(); cur != nil {
			_, cmd := cur.Update(msg)
			appendCmd(cmds, cmd)
		}
	}
	return false
}

func (m *Model) openHelp() {
	w, h := m.overlaySize()
	if m.helpOverlay == nil {
		m.helpOverlay = help.New(m.helpStyle, w, h)
	} else {
		m.helpOverlay.SetSize(w, h)
	}
	m.helpVisible = true
}

func (m *Model) toggleDebug() {
	if m.eventViewer != nil {
		m.eventViewer = nil
		m.layout()
		return
	}
	m.eventViewer = eventviewer.NewModel(400, m.th)
	m.eventViewer.Append(eventviewer.Entry{
		Timestamp: m.now(),
		Summary:   "debug",
		Detail:    "event pane enabled",
	})
	m.layout()
}

// noteEvent logs every component event and mirrors it into the debug pane.
func (m *Model) noteEvent(msg tea.Msg) {
	entry, ok := eventviewer.FromMsg(msg, m.now())
	if !ok {
		return
	}
	m.log.Debug("ui event",
		zap.String("source", entry.Source),
		zap.String("event", entry.Summary),
		zap.String("detail", entry.Detail),
	)
	if m.eventViewer != nil {
		m.eventViewer.Append(entry)
	}
}

func appendCmd(cmds *[]tea.Cmd, cmd tea.Cmd) {
	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// View renders the composed dashboard.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "initializing…"
	}
	if m.helpVisible && m.helpOverlay != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.helpOverlay.View())
	}

	l := m.computeLayout()
	blocks := []string{m.header.View()}

	var columns []string
	if l.sidebar > 0 {
		m.sidebar.SetSize(l.sidebar, l.body)
		columns = append(columns, clip(m.sidebar.View(), 0, l.body))
	}
	columns = append(columns, m.mainView(l))
	if l.secondary > 0 {
		columns = append(columns, clip(m.agenda.View(), 0, l.body))
	}
	blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, columns...))

	if m.eventViewer != nil {
		blocks = append(blocks, m.eventViewer.View())
	}
	blocks = append(blocks, m.footerView())
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m *Model) footerView() string {
	m.footer.Width = m.width
	status := fmt.Sprintf("focus: %s", m.Focused())
	if q := m.header.Query(); q != "" {
		status += fmt.Sprintf("  filter: %q", q)
	}
	if c := m.cases.State(); c != viewstate.Unchecked {
		status += fmt.Sprintf("  cases: %d selected", countSelected(m.cases.Rows()))
	}
	return m.th.Footer.Help.Render(m.footer.View(m.keys)) + "  " + m.th.Footer.Status.Render(status)
}

func countSelected(rows []record.Case) int {
	n := 0
	for _, c := range rows {
		if c.Selected {
			n++
		}
	}
	return n
}

// clip returns height lines of view starting at offset, padding with blank
// lines when the view is shorter.
func clip(view string, offset, height int) string {
	lines := strings.Split(view, "\n")
	if offset > len(lines) {
		offset = len(lines)
	}
	lines = lines[offset:]
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
