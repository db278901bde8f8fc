package sidebar

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"

	"tableflip.dev/casedesk/pkg/record"
	"tableflip.dev/casedesk/pkg/tui/events"
	"tableflip.dev/casedesk/pkg/tui/theme"
	"tableflip.dev/casedesk/pkg/viewstate"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newModel() (*Model, *viewstate.Accordion) {
	data := record.Sample()
	acc := viewstate.NewAccordion(record.ExpandableIDs(data.Nav), record.DefaultExpanded(data.Nav))
	m := NewModel(data.Nav, data.Recent, acc, theme.Default(), nil)
	m.SetSize(32, 0)
	m.Focus()
	return m, acc
}

func rowKinds(m *Model) []RowKind {
	var out []RowKind
	for _, r := range m.Rows() {
		out = append(out, r.Kind)
	}
	return out
}

func TestInitialRows(t *testing.T) {
	m, acc := newModel()
	if !acc.IsOpen("dashboard") {
		t.Fatalf("dashboard should start expanded")
	}
	want := []RowKind{
		RowEntry, RowChild, RowChild, RowChild,
		RowEntry, RowEntry, RowEntry,
		RowRecentHeader, RowRecent, RowRecent, RowRecent,
	}
	if diff := cmp.Diff(want, rowKinds(m)); diff != "" {
		t.Fatalf("rows (-want +got):\n%s", diff)
	}
}

func TestToggleAccordion(t *testing.T) {
	m, acc := newModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a disclosure event")
	}
	msg, ok := cmd().(events.DisclosureMsg)
	if !ok || msg.Key != "dashboard" || msg.Open {
		t.Fatalf("unexpected event %#v", msg)
	}
	if _, open := acc.Active(); open {
		t.Fatalf("accordion should be closed")
	}
	if got := len(m.Rows()); got != 8 {
		t.Fatalf("rows after collapse = %d, want 8", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !acc.IsOpen("dashboard") {
		t.Fatalf("second toggle should reopen")
	}
}

func TestLeafEmitsNavSelect(t *testing.T) {
	m, _ := newModel()
	for i := 0; i < 4; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg, ok := cmd().(events.NavSelectMsg)
	if !ok || msg.ID != "tasks" || msg.Href != "#tasks" {
		t.Fatalf("unexpected event %#v", msg)
	}
}

func TestRecentMessagesCollapse(t *testing.T) {
	m, acc := newModel()
	for i := 0; i < 7; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.Rows()[m.Cursor()].Kind != RowRecentHeader {
		t.Fatalf("cursor should rest on the recent header")
	}
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if m.RecentOpen() {
		t.Fatalf("recent messages should be collapsed")
	}
	if !acc.IsOpen("dashboard") {
		t.Fatalf("recent toggle must not touch the accordion")
	}
	if strings.Contains(m.View(), "Erik Gunsel") {
		t.Fatalf("collapsed list still rendered")
	}
}

func TestView(t *testing.T) {
	m, _ := newModel()
	view := m.View()
	for _, want := range []string{"Dashboard", "MAIN", "Performance Cases", "Tasks", "5", "RECENT MESSAGES", "Emily Smith"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	m, acc := newModel()
	m.Blur()
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatalf("blurred sidebar should not react")
	}
	if !acc.IsOpen("dashboard") {
		t.Fatalf("accordion changed while blurred")
	}
}
