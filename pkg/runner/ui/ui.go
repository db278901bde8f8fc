// Package ui launches the interactive dashboard.
package ui

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"tableflip.dev/casedesk/pkg/config"
	teaui "tableflip.dev/casedesk/pkg/tui/app"
	"tableflip.dev/casedesk/pkg/tui/theme"
)

// ErrTagNoTerminal marks attempts to start the dashboard without a TTY.
var ErrTagNoTerminal = goerr.NewTag("no_terminal")

// UI runs the Bubble Tea dashboard.
type UI struct {
	Config *config.Config
	Logger *zap.Logger
	// IsTerminal defaults to checking stdout.
	IsTerminal func() bool
	// Run defaults to teaui.Run.
	Run func(teaui.Options) error
}

// Options derives the dashboard options from the configuration.
func (u *UI) Options() teaui.Options {
	th := theme.ByName(u.Config.Theme)
	return teaui.Options{
		Profile:   u.Config.Profile(),
		Theme:     &th,
		HelpStyle: u.Config.Theme,
		Logger:    u.Logger,
	}
}

// Do starts the program and blocks until it exits.
func (u *UI) Do(_ context.Context) error {
	if u.Config == nil {
		return goerr.New("no configuration loaded")
	}
	isTerminal := u.IsTerminal
	if isTerminal == nil {
		isTerminal = stdoutIsTerminal
	}
	if !isTerminal() {
		return goerr.New("ui requires an interactive terminal; use `casedesk get` instead",
			goerr.T(ErrTagNoTerminal))
	}
	run := u.Run
	if run == nil {
		run = teaui.Run
	}
	opts := u.Options()
	if opts.Logger != nil {
		opts.Logger.Info("starting dashboard", zap.String("theme", u.Config.Theme), zap.String("user", u.Config.User.Name))
	}
	if err := run(opts); err != nil {
		return goerr.Wrap(err, "dashboard exited with an error")
	}
	return nil
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
