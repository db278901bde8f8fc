// Package breakdown renders the case type bar chart with its legend and the
// per-country active case list.
package breakdown

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/casedesk/pkg/glyph"
	"tableflip.dev/casedesk/pkg/record"
	"tableflip.dev/casedesk/pkg/tui/chart"
	"tableflip.dev/casedesk/pkg/tui/components/panel"
	"tableflip.dev/casedesk/pkg/tui/theme"
	"tableflip.dev/casedesk/pkg/tui/ui"
)

const (
	minCardWidth = 36
	labelWidth   = 12
)

// Model is the breakdown row.
type Model struct {
	th        theme.Theme
	types     []record.CaseType
	countries []record.Country
	width     int
}

var _ ui.Component = (*Model)(nil)

// NewModel builds the breakdown over types and countries.
func NewModel(types []record.CaseType, countries []record.Country, th theme.Theme) *Model {
	return &Model{
		th:        th,
		types:     append([]record.CaseType(nil), types...),
		countries: append([]record.Country(nil), countries...),
	}
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component; the breakdown is static.
func (m *Model) Update(tea.Msg) (ui.Component, tea.Cmd) { return m, nil }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, _ int) { m.width = width }

// View implements ui.Component.
func (m *Model) View() string {
	return panel.Grid(m.width, minCardWidth, m.caseTypes, m.perCountry)
}

// Bars converts the case types into chart bars coloured from the palette.
func (m *Model) Bars() []chart.Bar {
	bars := make([]chart.Bar, 0, len(m.types))
	for _, t := range m.types {
		bars = append(bars, chart.Bar{
			Label: t.Name,
			Value: t.Value,
			Style: lipgloss.NewStyle().Foreground(m.th.Palette.Resolve(t.Color)),
		})
	}
	return bars
}

func (m *Model) caseTypes(width int) string {
	card := panel.New(m.th.Card)
	card.SetLink("Full report")
	inner := panel.InnerWidth(m.th.Card, width)

	lines := chart.Bars(m.Bars(), chart.BarOptions{
		Width:      inner,
		LabelWidth: labelWidth,
		LabelStyle: m.th.Card.Muted,
		ValueStyle: m.th.Card.Strong,
	})
	lines = append(lines, "")
	lines = append(lines, m.legend(inner)...)

	card.SetContent("CASE TYPE BREAKDOWN", lines)
	view, _ := card.View(width)
	return view
}

// legend lays the entries out two per line.
func (m *Model) legend(width int) []string {
	col := (width - 2) / 2
	var cells []string
	for _, t := range m.types {
		dot := lipgloss.NewStyle().Foreground(m.th.Palette.Resolve(t.Color)).Render(glyph.Symbol(glyph.Dot))
		name := m.th.Card.Muted.Render(t.Name)
		value := m.th.Card.Strong.Render(fmt.Sprint(t.Value))
		gap := col - lipgloss.Width(dot) - 1 - lipgloss.Width(name) - lipgloss.Width(value)
		if gap < 1 {
			gap = 1
		}
		cells = append(cells, dot+" "+name+strings.Repeat(" ", gap)+value)
	}

	var lines []string
	for i := 0; i < len(cells); i += 2 {
		line := cells[i]
		if i+1 < len(cells) {
			line = panel.Pad(line, col) + "  " + cells[i+1]
		}
		lines = append(lines, line)
	}
	return lines
}

func (m *Model) perCountry(width int) string {
	card := panel.New(m.th.Card)
	card.SetLink("See all")
	inner := panel.InnerWidth(m.th.Card, width)

	lines := make([]string, 0, len(m.countries))
	for _, c := range m.countries {
		arrow := glyph.Symbol(glyph.TrendUp)
		if c.Trend.Direction == record.Negative {
			arrow = glyph.Symbol(glyph.TrendDown)
		}
		right := m.th.Card.Strong.Render(fmt.Sprintf("%3d", c.Active)) + " " +
			m.th.Trend(c.Trend.Direction).Render(fmt.Sprintf("%s %7s", arrow, c.Trend.Label()))
		name := m.th.Card.Body.Render(panel.Fit(c.Country, inner-lipgloss.Width(right)-1))
		gap := inner - lipgloss.Width(name) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, name+strings.Repeat(" ", gap)+right)
	}

	card.SetContent("NUMBER OF CASES (Per Country)", lines)
	view, _ := card.View(width)
	return view
}
