// Package get prints one dataset of the dashboard.
package get

import (
	"context"
	"encoding/json"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"

	"tableflip.dev/casedesk/pkg/printers"
	"tableflip.dev/casedesk/pkg/record"
)

// ErrTagUnknownKind marks a dataset name that does not exist.
var ErrTagUnknownKind = goerr.NewTag("unknown_kind")

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

type kind struct {
	value func(d *record.Dataset) interface{}
	print func(pp *printers.PrettyPrint, d *record.Dataset)
}

var kinds = map[string]kind{
	"cases": {
		value: func(d *record.Dataset) interface{} { return d.Cases },
		print: func(pp *printers.PrettyPrint, d *record.Dataset) { pp.Cases(d.Cases...) },
	},
	"events": {
		value: func(d *record.Dataset) interface{} { return d.Events },
		print: func(pp *printers.PrettyPrint, d *record.Dataset) { pp.Events(d.Events...) },
	},
	"tasks": {
		value: func(d *record.Dataset) interface{} { return d.Tasks },
		print: func(pp *printers.PrettyPrint, d *record.Dataset) { pp.Tasks(d.Tasks...) },
	},
	"messages": {
		value: func(d *record.Dataset) interface{} { return d.Messages },
		print: func(pp *printers.PrettyPrint, d *record.Dataset) { pp.Messages(d.Messages...) },
	},
	"metrics": {
		value: func(d *record.Dataset) interface{} { return d.Metrics },
		print: func(pp *printers.PrettyPrint, d *record.Dataset) { pp.Metrics(d.Metrics...) },
	},
	"breakdown": {
		value: func(d *record.Dataset) interface{} { return d.CaseTypes },
		print: func(pp *printers.PrettyPrint, d *record.Dataset) { pp.Breakdown(d.CaseTypes...) },
	},
	"countries": {
		value: func(d *record.Dataset) interface{} { return d.Countries },
		print: func(pp *printers.PrettyPrint, d *record.Dataset) { pp.Countries(d.Countries...) },
	},
	"nav": {
		value: func(d *record.Dataset) interface{} { return d.Nav },
		print: func(pp *printers.PrettyPrint, d *record.Dataset) { pp.Nav(d.Nav...) },
	},
}

// Kinds lists the dataset names accepted by Get, sorted.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Get prints the dataset named Kind.
type Get struct {
	Kind   string
	Format string
	Group  bool
	// Data defaults to record.Sample().
	Data *record.Dataset
	// Out defaults to color.Output.
	Out io.Writer
}

// Do renders the dataset.
func (g *Get) Do(_ context.Context) error {
	k, ok := kinds[g.Kind]
	if !ok {
		return goerr.New("unknown kind",
			goerr.V("kind", g.Kind),
			goerr.V("valid", Kinds()),
			goerr.T(ErrTagUnknownKind))
	}
	data := g.Data
	if data == nil {
		data = record.Sample()
	}
	out := g.Out
	if out == nil {
		out = color.Output
	}

	switch g.Format {
	case "", FormatTable:
		k.print(&printers.PrettyPrint{Out: out, Group: g.Group}, data)
		return nil
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(k.value(data)); err != nil {
			return goerr.Wrap(err, "failed to encode json", goerr.V("kind", g.Kind))
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(k.value(data)); err != nil {
			return goerr.Wrap(err, "failed to encode yaml", goerr.V("kind", g.Kind))
		}
		return enc.Close()
	default:
		return goerr.New("unknown output format", goerr.V("format", g.Format))
	}
}
