// Package performance renders the greeting card and the metric summary cards
// at the top of the main column.
package performance

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

const minCardWidth = 24

// Model is the performance summary row.
type Model struct {
	th      theme.Theme
	profile record.Profile
	metrics []record.Metric
	width   int
}

var _ ui.Component = (*Model)(nil)

// NewModel builds the summary for profile and metrics.
func NewModel(profile record.Profile, metrics []record.Metric, th theme.Theme) *Model {
	return &Model{
		th:      th,
		profile: profile,
		metrics: append([]record.Metric(nil), metrics...),
	}
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component; the summary is static.
func (m *Model) Update(tea.Msg) (ui.Component, tea.Cmd) { return m, nil }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, _ int) { m.width = width }

// View implements ui.Component.
func (m *Model) View() string {
	cards := []func(int) string{m.greeting}
	for _, metric := range m.metrics {
		metric := metric
		cards = append(cards, func(w int) string { return m.metric(metric, w) })
	}
	return panel.Grid(m.width, minCardWidth, cards...)
}

func (m *Model) greeting(width int) string {
	card := panel.New(m.th.Card)
	avatar := m.th.Header.Avatar.Render(m.profile.GreetingInitials())
	hello := m.th.Card.Strong.Render("Hello " + m.profile.GreetingName)
	card.SetContent("", []string{
		"",
		avatar + " " + hello,
		strings.Repeat(" ", lipgloss.Width(avatar)+1) + m.th.Card.Muted.Render("New cases are waiting"),
		"",
	})
	view, _ := card.View(width)
	return view
}

func (m *Model) metric(metric record.Metric, width int) string {
	card := panel.New(m.th.Card)
	inner := panel.InnerWidth(m.th.Card, width)

	lineStyle := lipgloss.NewStyle().Foreground(m.th.Palette.Primary)
	arrow := glyph.Symbol(glyph.TrendUp)
	if metric.Trend.Direction == record.Negative {
		lineStyle = lipgloss.NewStyle().Foreground(m.th.Palette.Destructive)
		arrow = glyph.Symbol(glyph.TrendDown)
	}

	value := m.th.Card.BigNumber.Render(fmt.Sprint(metric.Value))
	spark := chart.Sparkline(metric.Values(), lineStyle)
	gap := inner - lipgloss.Width(value) - lipgloss.Width(spark)
	if gap < 1 {
		gap = 1
	}
	trend := m.th.Trend(metric.Trend.Direction).Bold(true).Render(arrow + " " + metric.Trend.Label())

	card.SetContent("", []string{
		m.th.Card.Muted.Render(metric.Title),
		"",
		value + strings.Repeat(" ", gap) + spark,
		trend + " " + m.th.Card.Muted.Render(metric.Trend.Period),
	})
	view, _ := card.View(width)
	return view
}
