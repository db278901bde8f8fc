package panel

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"tableflip.dev/casedesk/pkg/tui/theme"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestFitAndPad(t *testing.T) {
	tests := map[string]struct {
		in      string
		width   int
		wantFit string
		wantPad string
	}{
		"short":   {in: "abc", width: 5, wantFit: "abc", wantPad: "abc  "},
		"exact":   {in: "abcde", width: 5, wantFit: "abcde", wantPad: "abcde"},
		"long":    {in: "abcdefgh", width: 5, wantFit: "abcd…", wantPad: "abcd…"},
		"no room": {in: "abc", width: 0, wantFit: "", wantPad: ""},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Fit(tc.in, tc.width); got != tc.wantFit {
				t.Errorf("Fit(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.wantFit)
			}
			if got := Pad(tc.in, tc.width); got != tc.wantPad {
				t.Errorf("Pad(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.wantPad)
			}
		})
	}
}

func TestViewWidth(t *testing.T) {
	card := New(theme.Default().Card)
	card.SetContent("TITLE", []string{"one", strings.Repeat("x", 200)})
	card.SetLink("See all")
	view, height := card.View(40)
	for i, line := range strings.Split(view, "\n") {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line %d is %d wide, want 40: %q", i, w, line)
		}
	}
	if height != lipgloss.Height(view) {
		t.Errorf("height = %d, want %d", height, lipgloss.Height(view))
	}
	if !strings.Contains(view, "See all") || !strings.Contains(view, "TITLE") {
		t.Errorf("title row missing:\n%s", view)
	}
}

func block(w int) string {
	return strings.Repeat("#", w)
}

func TestGrid(t *testing.T) {
	side := Grid(50, 10, block, block, block)
	if lipgloss.Height(side) != 1 || lipgloss.Width(side) != 50 {
		t.Errorf("side by side grid is %dx%d, want 50x1", lipgloss.Width(side), lipgloss.Height(side))
	}
	stacked := Grid(20, 10, block, block, block)
	if lipgloss.Height(stacked) != 3 || lipgloss.Width(stacked) != 20 {
		t.Errorf("stacked grid is %dx%d, want 20x3", lipgloss.Width(stacked), lipgloss.Height(stacked))
	}
	if Grid(20, 10) != "" {
		t.Errorf("empty grid should render nothing")
	}
}
