package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/casedesk/pkg/record"
)

func TestResolve(t *testing.T) {
	p := Default().Palette
	tests := []struct {
		spec string
		want lipgloss.Color
	}{
		{"primary", p.Primary},
		{"destructive", p.Destructive},
		{"hsl(221, 83%, 53%)", p.Blue},
		{"hsl(142,71%,45%)", p.Green},
		{"#ff0000", lipgloss.Color("#ff0000")},
		{"", p.Muted},
	}
	for _, tt := range tests {
		if got := p.Resolve(tt.spec); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

func TestPriorityUsesTone(t *testing.T) {
	th := Default()
	tests := map[record.Priority]lipgloss.Color{
		record.PriorityLow:    th.Palette.Success,
		record.PriorityMedium: th.Palette.Warning,
		record.PriorityHigh:   th.Palette.Destructive,
	}
	for p, want := range tests {
		if got := th.Priority(p).GetForeground(); got != want {
			t.Errorf("Priority(%q) foreground = %v, want %v", p, got, want)
		}
	}
}

func TestByName(t *testing.T) {
	if ByName("LIGHT").Palette.Foreground != Light().Palette.Foreground {
		t.Errorf("light theme not selected")
	}
	if ByName("unknown").Palette.Foreground != Default().Palette.Foreground {
		t.Errorf("unknown name should fall back to default")
	}
}
