package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestDo(t *testing.T) {
	var buf bytes.Buffer
	if err := (&Key{Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Symbol", "Meaning", "section open", "Priority", "High", "danger"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
