// Package header renders the top bar: the search box, the notification bell
// and the signed-in profile with its dropdown menu.
package header

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
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

// MenuKey names the profile dropdown disclosure.
const MenuKey = "profile-menu"

// MenuItems are the profile dropdown entries, in order.
var MenuItems = []string{"Profile", "Settings", "Log out"}

// Mode represents whether the search box captures keys.
type Mode int

const (
	// ModePassive leaves keys to the rest of the dashboard.
	ModePassive Mode = iota
	// ModeSearch sends keys to the search box.
	ModeSearch
)

const searchWidth = 28

// KeyMap lists the bindings used while searching.
type KeyMap struct {
	Cancel key.Binding
	Accept key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep filter")),
	}
}

// Model is the dashboard header.
type Model struct {
	id      events.ComponentID
	th      theme.Theme
	keys    KeyMap
	log     *zap.Logger
	profile record.Profile
	hasNew  bool
	mode    Mode
	search  textinput.Model
	regions *viewstate.Disclosures
	width   int
	height  int
}

var _ ui.Component = (*Model)(nil)

// NewModel builds the header for profile. hasNew lights the notification dot.
func NewModel(profile record.Profile, hasNew bool, th theme.Theme, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	search := textinput.New()
	search.Placeholder = "Search..."
	search.Prompt = ""
	search.Width = searchWidth

	return &Model{
		id:      events.Header,
		th:      th,
		keys:    DefaultKeyMap(),
		log:     log,
		profile: profile,
		hasNew:  hasNew,
		search:  search,
		regions: viewstate.NewDisclosures(map[string]bool{MenuKey: false}),
	}
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Keys returns the search bindings.
func (m *Model) Keys() KeyMap { return m.keys }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Mode reports whether the search box is active.
func (m *Model) Mode() Mode { return m.mode }

// Query returns the current search text.
func (m *Model) Query() string { return m.search.Value() }

// HasNotification reports whether the bell shows its dot.
func (m *Model) HasNotification() bool { return m.hasNew }

// MenuOpen reports whether the profile dropdown is expanded.
func (m *Model) MenuOpen() bool { return m.regions.IsOpen(MenuKey) }

// BeginSearch moves key input into the search box.
func (m *Model) BeginSearch() tea.Cmd {
	m.mode = ModeSearch
	return m.search.Focus()
}

// EndSearch leaves the search box. When clear is set the query is dropped.
func (m *Model) EndSearch(clear bool) tea.Cmd {
	m.mode = ModePassive
	m.search.Blur()
	if clear && m.search.Value() != "" {
		m.search.Reset()
		return events.Emit(events.SearchMsg{Component: m.id, Query: ""})
	}
	return nil
}

// ToggleMenu opens or closes the profile dropdown.
func (m *Model) ToggleMenu() tea.Cmd {
	if err := m.regions.Toggle(MenuKey); err != nil {
		m.log.Debug("menu toggle ignored", zap.Error(err))
		return nil
	}
	return events.Emit(events.DisclosureMsg{Component: m.id, Key: MenuKey, Open: m.MenuOpen()})
}

// Update implements ui.Component. Keys are only consumed in search mode.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if m.mode != ModeSearch {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		return m, m.EndSearch(true)
	case key.Matches(keyMsg, m.keys.Accept):
		return m, m.EndSearch(false)
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(keyMsg)
	if after := m.search.Value(); after != before {
		return m, tea.Batch(cmd, events.Emit(events.SearchMsg{Component: m.id, Query: after}))
	}
	return m, cmd
}

// View implements ui.Component. The dropdown, when open, renders beneath the
// bar aligned to the right edge.
func (m *Model) View() string {
	hd := m.th.Header
	width := m.width
	if width <= 0 {
		width = 80
	}
	inner := width - hd.Bar.GetHorizontalFrameSize()

	box := hd.Search
	if m.mode == ModeSearch {
		box = hd.SearchActive
	}
	left := box.Render(glyph.Symbol(glyph.Search) + " " + m.search.View())

	bell := glyph.Symbol(glyph.Bell)
	if m.hasNew {
		bell += hd.Notification.Render(glyph.Symbol(glyph.Dot))
	} else {
		bell += " "
	}
	who := lipgloss.JoinVertical(lipgloss.Right,
		hd.Role.Render(m.profile.Role),
		hd.Name.Render(m.profile.Name),
	)
	right := lipgloss.JoinHorizontal(lipgloss.Center,
		bell, "  ", who, " ", hd.Avatar.Render(m.profile.Initials()), " ", glyph.Symbol(glyph.ProfileMenu),
	)

	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), right)
	view := hd.Bar.Render(bar)

	if m.MenuOpen() {
		view = lipgloss.JoinVertical(lipgloss.Left, view, m.menuView(width))
	}
	return view
}

func (m *Model) menuView(width int) string {
	hd := m.th.Header
	const menuWidth = 24
	lines := []string{
		hd.Name.Render(panel.Pad(m.profile.Name, menuWidth)),
		hd.Role.Render(panel.Pad(m.profile.Role, menuWidth)),
		m.th.Card.Separator.Render(strings.Repeat("─", menuWidth)),
	}
	for _, item := range MenuItems {
		style := hd.Menu
		if item == "Log out" {
			lines = append(lines, m.th.Card.Separator.Render(strings.Repeat("─", menuWidth)))
			style = hd.MenuDanger
		}
		lines = append(lines, style.Render(panel.Pad(item, menuWidth)))
	}
	menu := m.th.Modal.Frame.Padding(0, 1).Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, menu)
}
