// Package commands wires the casedesk cobra command tree.
package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/casedesk/pkg/commands/options"
	"tableflip.dev/casedesk/pkg/config"
	"tableflip.dev/casedesk/pkg/logging"
)

var (
	oo = &base.OutputOptions{}
)

// env is filled by the root command before any subcommand runs.
type env struct {
	flags  options.GlobalOptions
	cfg    *config.Config
	logger *zap.Logger
}

// New builds the root command.
func New() *cobra.Command {
	e := &env{}

	cmd := &cobra.Command{
		Use:   "casedesk",
		Short: base.Wrap80("A terminal dashboard for reviewing legal cases, messages and your calendar."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.load()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}
	options.AddGlobalArgs(cmd, &e.flags)

	AddCommands(cmd, e)
	return cmd
}

// AddCommands attaches every subcommand to topLevel.
func AddCommands(topLevel *cobra.Command, e *env) {
	addUI(topLevel, e)
	addGet(topLevel)
	addKey(topLevel)
	addInfo(topLevel, e)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func (e *env) load() error {
	cfg, err := config.Load(e.flags.ConfigDir)
	if err != nil {
		return err
	}
	if e.flags.LogFile != "" {
		cfg.LogFile = e.flags.LogFile
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{File: cfg.LogFile, Level: level, Verbose: e.flags.Verbose})
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.logger = logger
	logger.Debug("configuration loaded", zap.String("file", cfg.File), zap.String("theme", cfg.Theme))
	return nil
}
