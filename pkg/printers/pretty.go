// Package printers renders dashboard datasets for the non-interactive CLI.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/casedesk/pkg/glyph"
	"tableflip.dev/casedesk/pkg/record"
	"tableflip.dev/casedesk/pkg/viewstate"
)

// PrettyPrint writes human-readable tables.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// Group splits events by day and tasks by owner.
	Group bool
}

const barWidth = 30

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)
	if count == 1 {
		_, _ = c.Fprintf(pp.out(), " %s\n", noun)
	} else {
		_, _ = c.Fprintf(pp.out(), " %ss\n", noun)
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

func (pp *PrettyPrint) table(tbl *uitable.Table) {
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func newTable(headers ...interface{}) *uitable.Table {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	if len(headers) > 0 {
		cells := make([]interface{}, 0, len(headers))
		for _, h := range headers {
			cells = append(cells, bold.Sprint(h))
		}
		tbl.AddRow(cells...)
	}
	return tbl
}

// ToneColor maps a semantic tone to a terminal colour.
func ToneColor(t record.Tone) *color.Color {
	switch t {
	case record.ToneSuccess:
		return color.New(color.FgGreen)
	case record.ToneWarning:
		return color.New(color.FgYellow)
	case record.ToneDanger:
		return color.New(color.FgRed)
	default:
		return color.New(color.Faint)
	}
}

func trendColor(d record.Direction) *color.Color {
	if d == record.Negative {
		return color.New(color.FgRed)
	}
	return color.New(color.FgGreen)
}

func trendArrow(d record.Direction) string {
	if d == record.Negative {
		return glyph.Symbol(glyph.TrendDown)
	}
	return glyph.Symbol(glyph.TrendUp)
}

func checkbox(c viewstate.Check) string {
	switch c {
	case viewstate.Checked:
		return glyph.Symbol(glyph.Checked)
	case viewstate.Indeterminate:
		return glyph.Symbol(glyph.Partial)
	default:
		return glyph.Symbol(glyph.Unchecked)
	}
}

// Cases prints the case list with the select-all state in the header.
func (pp *PrettyPrint) Cases(cases ...record.Case) {
	pp.TitleWithCount("Cases to be accepted", len(cases), "case")
	if len(cases) == 0 {
		pp.none()
		return
	}
	sel := viewstate.NewSelection(cases)
	tbl := newTable(checkbox(sel.State()), "NAME", "DATES", "PRIORITY", "ATTACHMENT", "USER")
	for _, c := range sel.Rows() {
		check := viewstate.Unchecked
		if c.Selected {
			check = viewstate.Checked
		}
		attachment := "-"
		if c.Attachment != nil {
			attachment = glyph.Symbol(glyph.Attachment) + " " + c.Attachment.Name
		}
		assignee := glyph.Symbol(glyph.Unassigned)
		if c.Assignee != nil {
			assignee = c.Assignee.Initials
		}
		tbl.AddRow(checkbox(check), c.Name, c.Dates,
			ToneColor(c.Priority.Tone()).Sprint(c.Priority), attachment, assignee)
	}
	pp.table(tbl)
}

// Events prints the agenda, split by day when Group is set.
func (pp *PrettyPrint) Events(events ...record.Event) {
	if !pp.Group {
		pp.TitleWithCount("Calendar", len(events), "event")
		if len(events) == 0 {
			pp.none()
			return
		}
		tbl := newTable("DAY", "TIME", "TITLE", "DURATION")
		for _, e := range events {
			tbl.AddRow(e.DayGroup, e.Time, e.Title, e.Duration)
		}
		pp.table(tbl)
		return
	}

	groups := viewstate.GroupBy(events, func(e record.Event) string { return e.DayGroup })
	if len(groups) == 0 {
		pp.TitleWithCount("Calendar", 0, "event")
		pp.none()
		return
	}
	for _, g := range groups {
		pp.TitleWithCount(g.Key, len(g.Items), "event")
		tbl := newTable()
		for _, e := range g.Items {
			tbl.AddRow(e.Time, e.Title, color.New(color.Faint).Sprint(e.Duration))
		}
		pp.table(tbl)
	}
}

// Tasks prints tasks, split by owner when Group is set.
func (pp *PrettyPrint) Tasks(tasks ...record.Task) {
	if !pp.Group {
		pp.TitleWithCount("Tasks", len(tasks), "task")
		if len(tasks) == 0 {
			pp.none()
			return
		}
		tbl := newTable("OWNER", "TASK", "DUE")
		for _, t := range tasks {
			tbl.AddRow(string(t.Owner), t.Name, t.DueShort)
		}
		pp.table(tbl)
		return
	}

	groups := viewstate.GroupBy(tasks, func(t record.Task) record.TaskOwner { return t.Owner })
	if len(groups) == 0 {
		pp.TitleWithCount("Tasks", 0, "task")
		pp.none()
		return
	}
	for _, g := range groups {
		pp.TitleWithCount(g.Key.Title(), len(g.Items), "task")
		tbl := newTable()
		for _, t := range g.Items {
			tbl.AddRow(glyph.Symbol(glyph.Dot), t.Name, t.DueShort)
		}
		pp.table(tbl)
	}
}

// Messages prints the communication feed.
func (pp *PrettyPrint) Messages(messages ...record.Message) {
	pp.TitleWithCount("Communication", len(messages), "message")
	if len(messages) == 0 {
		pp.none()
		return
	}
	name := color.New(color.Bold)
	faint := color.New(color.Faint)
	dot := color.New(color.FgRed)
	for _, m := range messages {
		_, _ = name.Fprint(pp.out(), m.Sender.Name)
		_, _ = faint.Fprintf(pp.out(), "  %s", m.Timestamp)
		if m.IsNew {
			_, _ = dot.Fprintf(pp.out(), " %s", glyph.Symbol(glyph.New))
		}
		_, _ = fmt.Fprintln(pp.out(), "")
		_, _ = fmt.Fprintf(pp.out(), "  %s\n", m.Snippet)
	}
	pp.NewLine()
}

// Metrics prints the performance cards.
func (pp *PrettyPrint) Metrics(metrics ...record.Metric) {
	pp.TitleWithCount("Performance", len(metrics), "metric")
	if len(metrics) == 0 {
		pp.none()
		return
	}
	tbl := newTable("METRIC", "VALUE", "TREND", "SERIES")
	for _, m := range metrics {
		values := make([]string, 0, len(m.Series))
		for _, p := range m.Series {
			values = append(values, fmt.Sprintf("%s:%d", p.Label, p.Value))
		}
		trend := trendColor(m.Trend.Direction).Sprintf("%s %s", trendArrow(m.Trend.Direction), m.Trend.Label())
		tbl.AddRow(m.Title, m.Value, trend, strings.Join(values, " "))
	}
	pp.table(tbl)
}

// Breakdown prints the case type shares as proportional bars.
func (pp *PrettyPrint) Breakdown(types ...record.CaseType) {
	pp.TitleWithCount("Case type breakdown", len(types), "type")
	if len(types) == 0 {
		pp.none()
		return
	}
	maxVal := 0
	for _, t := range types {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	tbl := newTable()
	for _, t := range types {
		n := 0
		if maxVal > 0 {
			n = t.Value * barWidth / maxVal
		}
		if n == 0 && t.Value > 0 {
			n = 1
		}
		tbl.AddRow(t.Name, strings.Repeat("█", n), t.Value)
	}
	pp.table(tbl)
}

// Countries prints active cases per country.
func (pp *PrettyPrint) Countries(countries ...record.Country) {
	pp.TitleWithCount("Cases per country", len(countries), "country")
	if len(countries) == 0 {
		pp.none()
		return
	}
	tbl := newTable("COUNTRY", "ACTIVE", "TREND")
	for _, c := range countries {
		tbl.AddRow(c.Country, c.Active,
			trendColor(c.Trend.Direction).Sprintf("%s %s", trendArrow(c.Trend.Direction), c.Trend.Label()))
	}
	tbl.RightAlign(1)
	pp.table(tbl)
}

// Nav prints the navigation tree. The entry holding the current page is
// marked with "*" and expandable entries show whether they start open.
func (pp *PrettyPrint) Nav(entries ...record.NavEntry) {
	pp.Title("Navigation")
	if len(entries) == 0 {
		pp.none()
		return
	}
	open := record.DefaultExpanded(entries)
	active := color.New(color.Bold, color.FgYellow)
	badge := color.New(color.FgRed)
	line := func(indent string, e record.NavEntry) {
		label := e.Label
		if e.Active {
			label = active.Sprint(label + " *")
		}
		_, _ = fmt.Fprintf(pp.out(), "%s%s %s", indent, glyph.Symbol(e.Icon), label)
		if e.Badge != "" {
			_, _ = badge.Fprintf(pp.out(), " (%s)", e.Badge)
		}
		_, _ = fmt.Fprintln(pp.out(), "")
	}
	for _, e := range entries {
		if e.Kind() != record.NavExpandable {
			line("", e)
			continue
		}
		marker := glyph.Symbol(glyph.Collapsed)
		if e.ID == open {
			marker = glyph.Symbol(glyph.Expanded)
		}
		_, _ = fmt.Fprintf(pp.out(), "%s %s %s\n", glyph.Symbol(e.Icon), e.Label, marker)
		for _, c := range e.Children() {
			line("   ", c)
		}
	}
	pp.NewLine()
}
