package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"

	"tableflip.dev/casedesk/pkg/config"
	teaui "tableflip.dev/casedesk/pkg/tui/app"
)

func testConfig() *config.Config {
	return &config.Config{
		User:     config.UserConfig{Name: "Ada Byron", Role: "COUNSEL", AvatarSeed: "ada"},
		Greeting: "Ada",
		Theme:    "light",
		LogLevel: "info",
	}
}

func TestRefusesWithoutTerminal(t *testing.T) {
	called := false
	u := &UI{
		Config:     testConfig(),
		IsTerminal: func() bool { return false },
		Run:        func(teaui.Options) error { called = true; return nil },
	}
	err := u.Do(context.Background())
	if !goerr.HasTag(err, ErrTagNoTerminal) {
		t.Fatalf("expected no terminal error, got %v", err)
	}
	if called {
		t.Fatalf("program must not start")
	}
}

func TestPassesProfile(t *testing.T) {
	var got teaui.Options
	u := &UI{
		Config:     testConfig(),
		IsTerminal: func() bool { return true },
		Run:        func(o teaui.Options) error { got = o; return nil },
	}
	if err := u.Do(context.Background()); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if got.Profile.Name != "Ada Byron" || got.Profile.GreetingName != "Ada" || got.HelpStyle != "light" {
		t.Fatalf("unexpected options %#v", got)
	}
	if got.Theme == nil {
		t.Fatalf("theme should be set")
	}
}

func TestRunError(t *testing.T) {
	u := &UI{
		Config:     testConfig(),
		IsTerminal: func() bool { return true },
		Run:        func(teaui.Options) error { return errors.New("boom") },
	}
	if err := u.Do(context.Background()); err == nil {
		t.Fatalf("expected the program error")
	}
}
