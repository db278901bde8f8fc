package performance

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"tableflip.dev/casedesk/pkg/record"
	"tableflip.dev/casedesk/pkg/tui/theme"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestView(t *testing.T) {
	data := record.Sample()
	m := NewModel(data.Profile, data.Metrics, theme.Default())
	m.SetSize(100, 0)
	view := m.View()

	for _, want := range []string{
		"Hello Peter", "PE", "New cases are waiting",
		"NEW CASES", "104", "↗ +14.88%",
		"NEW TASKS", "34", "↘ -5.67%", "Trends last month",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		maxHeight int
	}{
		{name: "side by side", width: 120, maxHeight: 6},
		{name: "stacked", width: 40, maxHeight: 18},
	}
	data := record.Sample()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewModel(data.Profile, data.Metrics, theme.Default())
			m.SetSize(tc.width, 0)
			view := m.View()
			if h := lipgloss.Height(view); h > tc.maxHeight {
				t.Fatalf("height = %d, want <= %d", h, tc.maxHeight)
			}
			if w := lipgloss.Width(view); w > tc.width {
				t.Fatalf("width = %d, want <= %d", w, tc.width)
			}
		})
	}
}
