package header

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"tableflip.dev/casedesk/pkg/record"
	"tableflip.dev/casedesk/pkg/tui/events"
	"tableflip.dev/casedesk/pkg/tui/theme"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newModel(hasNew bool) *Model {
	m := NewModel(record.DefaultProfile(), hasNew, theme.Default(), nil)
	m.SetSize(100, 2)
	return m
}

func typeText(m *Model, s string) []tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range s {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		cmds = append(cmds, cmd)
	}
	return cmds
}

func TestProfileRendering(t *testing.T) {
	view := newModel(true).View()
	for _, want := range []string{"Peter Malby", "DELL LAWYER", "PM", "Search..."} {
		if !strings.Contains(view, want) {
			t.Errorf("header missing %q:\n%s", want, view)
		}
	}
}

func TestNotificationDot(t *testing.T) {
	tests := []struct {
		name   string
		hasNew bool
	}{
		{name: "new messages", hasNew: true},
		{name: "all read", hasNew: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newModel(tc.hasNew)
			got := strings.Contains(m.View(), "●")
			if got != tc.hasNew {
				t.Fatalf("dot rendered = %t, want %t", got, tc.hasNew)
			}
		})
	}
}

func TestPassiveModeIgnoresKeys(t *testing.T) {
	m := newModel(false)
	typeText(m, "abc")
	if m.Query() != "" {
		t.Fatalf("passive header captured %q", m.Query())
	}
}

func TestSearchTypingAndCancel(t *testing.T) {
	m := newModel(false)
	m.BeginSearch()
	if m.Mode() != ModeSearch {
		t.Fatalf("mode = %v", m.Mode())
	}
	cmds := typeText(m, "med")
	if m.Query() != "med" {
		t.Fatalf("Query() = %q", m.Query())
	}
	if cmds[len(cmds)-1] == nil {
		t.Fatalf("typing should emit a search event")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Mode() != ModePassive || m.Query() != "" {
		t.Fatalf("esc should leave and clear, mode=%v query=%q", m.Mode(), m.Query())
	}
	if msg, ok := cmd().(events.SearchMsg); !ok || msg.Query != "" {
		t.Fatalf("unexpected event %#v", msg)
	}
}

func TestSearchAcceptKeepsQuery(t *testing.T) {
	m := newModel(false)
	m.BeginSearch()
	typeText(m, "case")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Mode() != ModePassive || m.Query() != "case" {
		t.Fatalf("enter should keep the filter, mode=%v query=%q", m.Mode(), m.Query())
	}
}

func TestProfileMenu(t *testing.T) {
	m := newModel(false)
	if strings.Contains(m.View(), "Log out") {
		t.Fatalf("menu should start closed")
	}
	cmd := m.ToggleMenu()
	if msg, ok := cmd().(events.DisclosureMsg); !ok || msg.Key != MenuKey || !msg.Open {
		t.Fatalf("unexpected event %#v", msg)
	}
	view := m.View()
	for _, item := range MenuItems {
		if !strings.Contains(view, item) {
			t.Errorf("open menu missing %q", item)
		}
	}
	m.ToggleMenu()
	if m.MenuOpen() {
		t.Fatalf("second toggle should close the menu")
	}
}
