package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/casedesk/pkg/config"
)

func init() {
	color.NoColor = true
}

func TestDo(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	var buf bytes.Buffer
	cfg := &config.Config{
		User:     config.UserConfig{Name: "Peter Malby", Role: "DELL LAWYER", AvatarSeed: "peter_malby"},
		Greeting: "Peter",
		Theme:    "dark",
		LogLevel: "info",
	}
	if err := (&Info{Config: cfg, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"CASEDESK_CONFIG_PATH env var not set",
		"(none, using defaults)",
		"https://avatar.vercel.sh/petermalby.png",
		"(disabled)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNoConfig(t *testing.T) {
	if err := (&Info{}).Do(context.Background()); err == nil {
		t.Fatalf("expected an error without config")
	}
}
