// Package info reports the effective configuration.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/m-mizutani/goerr/v2"

	"tableflip.dev/casedesk/pkg/config"
)

// Info prints where settings came from and their values.
type Info struct {
	Config *config.Config
	// Out defaults to color.Output.
	Out io.Writer
}

// Do renders the report.
func (n *Info) Do(_ context.Context) error {
	if n.Config == nil {
		return goerr.New("no configuration loaded")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv(config.EnvConfigPath); override != "" {
		_, _ = fmt.Fprintf(out, "%s found on env, using %s\n", config.EnvConfigPath, override)
	} else {
		_, _ = fmt.Fprintf(out, "%s env var not set\n", config.EnvConfigPath)
	}
	file := n.Config.File
	if file == "" {
		file = "(none, using defaults)"
	}

	bold := color.New(color.Bold)
	logFile := n.Config.LogFile
	if logFile == "" {
		logFile = "(disabled)"
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Setting"), bold.Sprint("Value"))
	tbl.AddRow("config file", file)
	tbl.AddRow("user.name", n.Config.User.Name)
	tbl.AddRow("user.role", n.Config.User.Role)
	tbl.AddRow("user.avatar_seed", n.Config.User.AvatarSeed)
	tbl.AddRow("avatar url", n.Config.Profile().AvatarURL())
	tbl.AddRow("greeting.name", n.Config.Greeting)
	tbl.AddRow("theme", n.Config.Theme)
	tbl.AddRow("log.file", logFile)
	tbl.AddRow("log.level", n.Config.LogLevel)
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
