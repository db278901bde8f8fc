package eventviewer

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"tableflip.dev/casedesk/pkg/tui/events"
	"tableflip.dev/casedesk/pkg/tui/theme"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestFromMsg(t *testing.T) {
	now := time.Date(2025, 6, 16, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		name    string
		msg     tea.Msg
		ok      bool
		source  string
		summary string
		level   Level
	}{
		{
			name:    "case toggle",
			msg:     events.CaseToggleMsg{Component: events.Cases, CaseID: "case2", Selected: true},
			ok:      true,
			source:  "cases",
			summary: "CaseToggle",
		},
		{
			name:    "debug note",
			msg:     events.DebugMsg{Component: events.Sidebar, Context: "toggle", Detail: "unknown"},
			ok:      true,
			source:  "sidebar",
			summary: "Debug",
			level:   LevelWarn,
		},
		{
			name: "window size",
			msg:  tea.WindowSizeMsg{Width: 10, Height: 10},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entry, ok := FromMsg(tc.msg, now)
			if ok != tc.ok {
				t.Fatalf("ok = %t, want %t", ok, tc.ok)
			}
			if !ok {
				return
			}
			if entry.Source != tc.source || entry.Summary != tc.summary || entry.Level != tc.level {
				t.Fatalf("unexpected entry %#v", entry)
			}
			if !entry.Timestamp.Equal(now) {
				t.Fatalf("timestamp = %v", entry.Timestamp)
			}
		})
	}
}

func TestNewestFirstAndCap(t *testing.T) {
	m := NewModel(2, theme.Default())
	m.SetSize(80, 8)
	if !strings.Contains(m.View(), "No events yet") {
		t.Fatalf("empty pane should say so")
	}
	for _, s := range []string{"first", "second", "third"} {
		m.Append(Entry{Summary: s})
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	view := m.View()
	if strings.Contains(view, "first") {
		t.Fatalf("oldest entry should be dropped")
	}
	if strings.Index(view, "third") > strings.Index(view, "second") {
		t.Fatalf("newest entry should come first:\n%s", view)
	}
	if h := lipgloss.Height(view); h != 8 {
		t.Fatalf("height = %d, want 8", h)
	}
}
