// Command testbed renders one dashboard component inside a resizable frame
// with a live event log underneath, for iterating on a component in
// isolation.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tableflip.dev/casedesk/pkg/tui/theme"
)

type options struct {
	full   bool
	width  int
	height int
	theme  string
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "testbed",
		Short: "Run a single casedesk component in a harness",
	}

	rootCmd.PersistentFlags().BoolVar(&opts.full, "full", false, "use the full terminal window")
	rootCmd.PersistentFlags().IntVar(&opts.width, "width", 80, "frame width when not fullscreen")
	rootCmd.PersistentFlags().IntVar(&opts.height, "height", 20, "frame height when not fullscreen")
	rootCmd.PersistentFlags().StringVar(&opts.theme, "theme", "dark", "colour theme, dark or light")

	for _, f := range fixtures() {
		rootCmd.AddCommand(newFixtureCmd(&opts, f))
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newFixtureCmd(opts *options, f fixture) *cobra.Command {
	return &cobra.Command{
		Use:   f.name,
		Short: f.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			th := theme.ByName(opts.theme)
			m := newHarness(*opts, th, f.build(th))
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}
