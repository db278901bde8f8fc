package calendar

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"

	"tableflip.dev/casedesk/pkg/record"
	"tableflip.dev/casedesk/pkg/tui/theme"
	"tableflip.dev/casedesk/pkg/viewstate"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newModel() *Model {
	data := record.Sample()
	m := NewModel(data.Events, data.Tasks, theme.Default())
	m.SetSize(40, 40)
	return m
}

func TestGroupsByDayInFirstSeenOrder(t *testing.T) {
	m := newModel()
	if diff := cmp.Diff([]string{"MON 16", "TUE 17", "WED 18"}, viewstate.Keys(m.Groups())); diff != "" {
		t.Fatalf("day order (-want +got):\n%s", diff)
	}
	var mon []string
	for _, e := range m.Groups()[0].Items {
		mon = append(mon, e.ID)
	}
	if diff := cmp.Diff([]string{"event1", "event2"}, mon); diff != "" {
		t.Fatalf("MON 16 events (-want +got):\n%s", diff)
	}
}

func TestTaskGroups(t *testing.T) {
	m := newModel()
	groups := m.TaskGroups()
	if len(groups) != 2 || groups[0].Key != record.OwnerMine || len(groups[0].Items) != 3 || len(groups[1].Items) != 2 {
		t.Fatalf("unexpected task groups %+v", groups)
	}
}

func TestSeparatorsBetweenGroupsOnly(t *testing.T) {
	m := newModel()
	lines := m.agendaLines(36)
	seps := 0
	for _, l := range lines {
		if strings.HasPrefix(l, "─") {
			seps++
		}
	}
	if seps != 2 {
		t.Fatalf("separators = %d, want 2", seps)
	}
	if strings.HasPrefix(lines[len(lines)-1], "─") {
		t.Fatalf("separator after last group")
	}
}

func TestScrollWhenFocused(t *testing.T) {
	m := newModel()
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.ScrollOffset() != 0 {
		t.Fatalf("blurred agenda scrolled")
	}
	m.Focus()
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.ScrollOffset() != 2 {
		t.Fatalf("offset = %d, want 2", m.ScrollOffset())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	if m.ScrollOffset() != 1 {
		t.Fatalf("offset = %d, want 1", m.ScrollOffset())
	}
}

func TestViewHasAllCards(t *testing.T) {
	view := newModel().View()
	for _, want := range []string{"MY CALENDAR", "MON 16", "Meeting for case 1", "LIST OF MY TASKS", "TASK ASSIGNED TO OTHERS", "Ma"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
