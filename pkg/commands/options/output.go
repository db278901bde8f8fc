package options

import (
	"github.com/spf13/cobra"
)

// GlobalOptions are the persistent flags of the root command.
type GlobalOptions struct {
	ConfigDir string
	LogFile   string
	Verbose   bool
}

// AddGlobalArgs registers the persistent flags on cmd.
func AddGlobalArgs(cmd *cobra.Command, o *GlobalOptions) {
	cmd.PersistentFlags().StringVar(&o.ConfigDir, "config", "",
		"Directory holding .casedesk.yaml. Searched after $CASEDESK_CONFIG_PATH.")
	cmd.PersistentFlags().StringVar(&o.LogFile, "log-file", "",
		"Write JSON logs to this file. Overrides log.file.")
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log at debug level.")
}

// FormatOptions select how a dataset is printed.
type FormatOptions struct {
	Format string
	Group  bool
}

// AddFormatArgs registers the output format flags on cmd.
func AddFormatArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Format, "output", "o", "table",
		"Output format. One of 'table', 'json' or 'yaml'.")
	cmd.Flags().BoolVar(&o.Group, "group", false,
		"Group events by day and tasks by owner.")
}
