// Package key provides CLI helpers to display the dashboard legend.
package key

import (
	"context"
	"io"

	"tableflip.dev/casedesk/pkg/printers"
)

// Key prints the symbol legend and the priority colours.
type Key struct {
	// Out defaults to color.Output.
	Out io.Writer
}

// Do renders the legend.
func (k *Key) Do(_ context.Context) error {
	pp := printers.PrettyPrint{Out: k.Out}
	pp.Key()
	return nil
}
