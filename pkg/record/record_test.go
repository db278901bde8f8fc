package record

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"tableflip.dev/casedesk/pkg/viewstate"
)

func TestPriorityTone(t *testing.T) {
	tests := []struct {
		priority Priority
		want     Tone
	}{
		{PriorityLow, ToneSuccess},
		{PriorityMedium, ToneWarning},
		{PriorityHigh, ToneDanger},
		{Priority("Urgent"), ToneMuted},
	}
	for _, tt := range tests {
		if got := tt.priority.Tone(); got != tt.want {
			t.Errorf("%q.Tone() = %q, want %q", tt.priority, got, tt.want)
		}
	}
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority(" medium ")
	if err != nil {
		t.Fatalf("ParsePriority: %v", err)
	}
	if p != PriorityMedium {
		t.Fatalf("got %q, want Medium", p)
	}
	if _, err := ParsePriority("orange"); !viewstate.IsInvalidState(err) {
		t.Fatalf("expected invalid state error, got %v", err)
	}
}

func TestTrendLabel(t *testing.T) {
	tests := map[string]Trend{
		"+14.88%": {Direction: Positive, Percent: 14.88},
		"-5.67%":  {Direction: Negative, Percent: 5.67},
		"+16.7%":  {Direction: Positive, Percent: 16.7},
	}
	for want, trend := range tests {
		if got := trend.Label(); got != want {
			t.Errorf("Label() = %q, want %q", got, want)
		}
	}
}

func TestProfileDerivations(t *testing.T) {
	p := Profile{Name: "Peter Malby", AvatarSeed: "Peter_Malby!", GreetingName: "Peter"}
	if got := p.Initials(); got != "PM" {
		t.Errorf("Initials() = %q, want PM", got)
	}
	if got := p.GreetingInitials(); got != "PE" {
		t.Errorf("GreetingInitials() = %q, want PE", got)
	}
	if got := p.AvatarURL(); got != "https://avatar.vercel.sh/petermalby.png" {
		t.Errorf("AvatarURL() = %q", got)
	}
}

func TestSampleReturnsFreshCopies(t *testing.T) {
	a := Sample()
	a.Cases[0].Selected = false
	a.Cases[1].Assignee.Name = "changed"

	b := Sample()
	if !b.Cases[0].Selected {
		t.Fatalf("mutating one sample leaked into the next")
	}
	if b.Cases[1].Assignee.Name != "Lana Aris" {
		t.Fatalf("assignee pointer shared between samples")
	}
}

func TestSampleCaseSelectionSeed(t *testing.T) {
	var got []bool
	for _, c := range Sample().Cases {
		got = append(got, c.Selected)
	}
	if diff := cmp.Diff([]bool{true, false, false}, got); diff != "" {
		t.Fatalf("selected seed mismatch (-want +got):\n%s", diff)
	}
}

func TestNewExpandableRejectsNesting(t *testing.T) {
	inner, err := NewExpandable("inner", "Inner", "", Leaf("a", "A", "#a"))
	if err != nil {
		t.Fatalf("NewExpandable: %v", err)
	}
	if _, err := NewExpandable("outer", "Outer", "", inner); !viewstate.IsInvalidState(err) {
		t.Fatalf("expected invalid state for nested expandable, got %v", err)
	}
}

func TestDefaultExpanded(t *testing.T) {
	if got := DefaultExpanded(Sample().Nav); got != "dashboard" {
		t.Fatalf("DefaultExpanded = %q, want dashboard", got)
	}

	plain, _ := NewExpandable("reports", "Reports", "", Leaf("r1", "R1", "#r1"))
	if got := DefaultExpanded([]NavEntry{plain, Leaf("x", "X", "#x", WithActive())}); got != "" {
		t.Fatalf("DefaultExpanded = %q, want none", got)
	}
}

func TestNavEntryMarshal(t *testing.T) {
	nav := Sample().Nav

	b, err := json.Marshal(nav[0])
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("json decode: %v", err)
	}
	if doc["kind"] != "expandable" {
		t.Errorf("kind = %v, want expandable", doc["kind"])
	}
	children, _ := doc["children"].([]interface{})
	if len(children) != 3 {
		t.Errorf("children = %d, want 3", len(children))
	}

	y, err := yaml.Marshal(nav[1])
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(string(y), "badge: \"5\"") {
		t.Errorf("yaml missing badge:\n%s", y)
	}
}

func TestMatches(t *testing.T) {
	data := Sample()
	if !data.Cases[1].Matches("lana") {
		t.Errorf("expected assignee match")
	}
	if data.Cases[0].Matches("lana") {
		t.Errorf("case without assignee matched assignee query")
	}
	if !data.Cases[2].Matches("NIKE") {
		t.Errorf("expected attachment match ignoring case")
	}
	if !data.Messages[2].Matches("project x") {
		t.Errorf("expected snippet match")
	}
	if !data.Messages[0].Matches("") {
		t.Errorf("empty query should match")
	}
}
