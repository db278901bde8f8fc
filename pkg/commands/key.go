package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/casedesk/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the symbols and priority colours used by the dashboard.",
		Example: `
casedesk key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{Out: cmd.OutOrStdout()}
			err := k.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
