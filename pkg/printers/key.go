package printers

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/casedesk/pkg/glyph"
	"tableflip.dev/casedesk/pkg/record"
)

// Key prints the symbol legend followed by the priority colours.
func (pp *PrettyPrint) Key() {
	bold := color.New(color.Bold)

	pp.NewLine()
	tbl := newTable()
	tbl.AddRow(bold.Sprint("  Symbol"), bold.Sprint("Meaning"))
	for _, g := range glyph.All() {
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	tbl = newTable()
	tbl.AddRow(bold.Sprint("Priority"), bold.Sprint("Tone"))
	for _, p := range record.Priorities() {
		tbl.AddRow(ToneColor(p.Tone()).Sprint(p), string(p.Tone()))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}
