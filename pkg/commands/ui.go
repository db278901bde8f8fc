package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/casedesk/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive dashboard.",
		Example: `
casedesk ui
casedesk ui --log-file ~/casedesk.log -v
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			i := ui.UI{Config: e.cfg, Logger: e.logger}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
