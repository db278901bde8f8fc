package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/casedesk/pkg/commands/options"
	"tableflip.dev/casedesk/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "get [kind]",
		Short: "Print one of the dashboard datasets.",
		Long: fmt.Sprintf("Print one of the dashboard datasets.\n\nKinds: %s\n",
			strings.Join(get.Kinds(), ", ")),
		Example: `
casedesk get cases
casedesk get events --group
casedesk get nav -o yaml
`,
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: get.Kinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			format := fo.Format
			if oo.JSON {
				format = get.FormatJSON
			}
			g := get.Get{
				Kind:   args[0],
				Format: format,
				Group:  fo.Group,
				Out:    cmd.OutOrStdout(),
			}
			err := g.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFormatArgs(cmd, fo)
	base.AddOutputArg(cmd, oo)
	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{get.FormatTable, get.FormatJSON, get.FormatYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
