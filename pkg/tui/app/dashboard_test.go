package teaui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"

	"tableflip.dev/casedesk/pkg/tui/components/header"
	"tableflip.dev/casedesk/pkg/tui/events"
	"tableflip.dev/casedesk/pkg/viewstate"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newDashboard(width, height int) *Model {
	m := New(Options{
		HelpStyle: "notty",
		Now:       func() time.Time { return time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC) },
	})
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func press(m *Model, keys ...string) tea.Cmd {
	var last tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "pgdown":
			msg = tea.KeyMsg{Type: tea.KeyPgDown}
		case "pgup":
			msg = tea.KeyMsg{Type: tea.KeyPgUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, last = m.Update(msg)
	}
	return last
}

func TestInitialState(t *testing.T) {
	m := newDashboard(180, 60)
	if key, open := m.Accordion().Active(); !open || key != "dashboard" {
		t.Fatalf("accordion = %q,%t; want dashboard open", key, open)
	}
	if m.Focused() != events.Sidebar {
		t.Fatalf("Focused() = %q", m.Focused())
	}
	if !m.Header().HasNotification() {
		t.Fatalf("sample data has new messages")
	}
}

func TestFocusCycle(t *testing.T) {
	m := newDashboard(180, 60)
	var got []events.ComponentID
	for i := 0; i < 4; i++ {
		press(m, "tab")
		got = append(got, m.Focused())
	}
	want := []events.ComponentID{events.Cases, events.Feed, events.Agenda, events.Sidebar}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("focus order (-want +got):\n%s", diff)
	}
	press(m, "shift+tab")
	if m.Focused() != events.Agenda {
		t.Fatalf("shift+tab should go back, got %q", m.Focused())
	}
}

func TestCaseSelectionThroughKeys(t *testing.T) {
	m := newDashboard(180, 60)
	press(m, "tab", "x")
	if m.Cases().Rows()[0].Selected {
		t.Fatalf("x should clear the preselected first case")
	}
	if m.Cases().State() != viewstate.Unchecked {
		t.Fatalf("State() = %v", m.Cases().State())
	}
	press(m, "a")
	if m.Cases().State() != viewstate.Checked {
		t.Fatalf("a should select every case, got %v", m.Cases().State())
	}
}

func TestSidebarSharesAccordion(t *testing.T) {
	m := newDashboard(180, 60)
	press(m, "enter")
	if _, open := m.Accordion().Active(); open {
		t.Fatalf("sidebar toggle should close the dashboard-owned accordion")
	}
}

func TestSearchFiltersCasesAndMessages(t *testing.T) {
	m := newDashboard(180, 60)
	press(m, "/", "N", "i", "k", "e")
	if m.Header().Mode() != header.ModeSearch {
		t.Fatalf("search should capture keys")
	}
	if got := len(m.Cases().Visible()); got != 1 {
		t.Fatalf("visible cases = %d, want 1", got)
	}
	if got := len(m.Feed().Visible()); got != 0 {
		t.Fatalf("visible messages = %d, want 0", got)
	}
	if m.HelpVisible() {
		t.Fatalf("typed keys must not reach global bindings")
	}

	press(m, "esc")
	if m.Header().Mode() != header.ModePassive {
		t.Fatalf("esc should leave search")
	}
	if got := len(m.Cases().Visible()); got != 3 {
		t.Fatalf("clearing search should restore cases, got %d", got)
	}
}

func TestProfileMenu(t *testing.T) {
	m := newDashboard(180, 60)
	press(m, "p")
	if !m.Header().MenuOpen() {
		t.Fatalf("p should open the profile menu")
	}
	if !strings.Contains(m.View(), "Log out") {
		t.Fatalf("menu not rendered")
	}
	press(m, "esc")
	if m.Header().MenuOpen() {
		t.Fatalf("esc should close the menu")
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newDashboard(120, 40)
	press(m, "?")
	if !m.HelpVisible() {
		t.Fatalf("? should open help")
	}
	if !strings.Contains(m.View(), "Moving around") {
		t.Fatalf("help overlay not rendered")
	}
	if cmd := press(m, "q"); cmd != nil {
		t.Fatalf("q inside help should close it, not quit")
	}
	if m.HelpVisible() {
		t.Fatalf("help should be closed")
	}
}

func TestQuit(t *testing.T) {
	m := newDashboard(120, 40)
	cmd := press(m, "q")
	if cmd == nil {
		t.Fatalf("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestDebugPane(t *testing.T) {
	m := newDashboard(180, 60)
	press(m, "D")
	if !m.DebugVisible() {
		t.Fatalf("D should show the event pane")
	}
	m.Update(events.CaseToggleMsg{Component: events.Cases, CaseID: "case2", Selected: true})
	view := m.View()
	for _, want := range []string{"EVENTS", "CaseToggle", `case:"case2"`} {
		if !strings.Contains(view, want) {
			t.Errorf("event pane missing %q", want)
		}
	}
	if h := lipgloss.Height(view); h != 60 {
		t.Fatalf("height = %d, want 60", h)
	}
	press(m, "D")
	if m.DebugVisible() {
		t.Fatalf("second D should hide the pane")
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		wantNav    bool
		wantAgenda bool
	}{
		{name: "wide", width: 180, wantNav: true, wantAgenda: true},
		{name: "medium", width: 100, wantNav: true, wantAgenda: false},
		{name: "narrow", width: 70, wantNav: false, wantAgenda: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newDashboard(tc.width, 50)
			view := m.View()
			if h := lipgloss.Height(view); h != 50 {
				t.Fatalf("height = %d, want 50", h)
			}
			if got := strings.Contains(view, "RECENT MESSAGES"); got != tc.wantNav {
				t.Fatalf("sidebar shown = %t, want %t", got, tc.wantNav)
			}
			if got := strings.Contains(view, "MY CALENDAR"); got != tc.wantAgenda {
				t.Fatalf("agenda in first screen = %t, want %t", got, tc.wantAgenda)
			}
		})
	}
}

func TestMainColumnScroll(t *testing.T) {
	m := newDashboard(180, 30)
	press(m, "pgdown")
	if m.MainOffset() == 0 {
		t.Fatalf("pgdown should scroll the main column")
	}
	press(m, "pgup", "pgup", "pgup")
	if m.MainOffset() != 0 {
		t.Fatalf("pgup should stop at the top, got %d", m.MainOffset())
	}
}

func TestFocusRevealsCard(t *testing.T) {
	m := newDashboard(180, 20)
	press(m, "tab", "tab")
	if m.Focused() != events.Feed {
		t.Fatalf("Focused() = %q", m.Focused())
	}
	if m.MainOffset() == 0 {
		t.Fatalf("focusing the feed should scroll it into view")
	}
}
