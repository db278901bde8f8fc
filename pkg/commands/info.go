package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/casedesk/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show where settings were read from and their effective values.",
		Example: `
casedesk info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := info.Info{
				Config: e.cfg,
				Out:    cmd.OutOrStdout(),
			}
			err := s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
