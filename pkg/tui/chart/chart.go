// Package chart renders small text charts: sparklines for metric series and
// horizontal bars for breakdowns.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var ticks = []rune("▁▂▃▄▅▆▇█")

// Sparkline maps each value to a block height between the series minimum
// and maximum. A flat series renders at mid height.
func Sparkline(values []int, style lipgloss.Style) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	out := make([]rune, 0, len(values))
	for _, v := range values {
		idx := len(ticks) / 2
		if hi > lo {
			idx = (v - lo) * (len(ticks) - 1) / (hi - lo)
		}
		out = append(out, ticks[idx])
	}
	return style.Render(string(out))
}

// Bar is one row of a horizontal bar chart.
type Bar struct {
	Label string
	Value int
	Style lipgloss.Style
}

// BarOptions controls bar layout.
type BarOptions struct {
	Width      int
	LabelWidth int
	LabelStyle lipgloss.Style
	ValueStyle lipgloss.Style
}

// Bars renders one line per bar. Bar lengths are proportional to the largest
// value; any non-zero value gets at least one cell.
func Bars(bars []Bar, opts BarOptions) []string {
	if len(bars) == 0 {
		return nil
	}
	maxVal := 0
	valueWidth := 1
	for _, b := range bars {
		if b.Value > maxVal {
			maxVal = b.Value
		}
		if w := len(fmt.Sprint(b.Value)); w > valueWidth {
			valueWidth = w
		}
	}
	labelWidth := opts.LabelWidth
	if labelWidth <= 0 {
		for _, b := range bars {
			if w := lipgloss.Width(b.Label); w > labelWidth {
				labelWidth = w
			}
		}
	}
	track := opts.Width - labelWidth - valueWidth - 2
	if track < 1 {
		track = 1
	}

	lines := make([]string, 0, len(bars))
	for _, b := range bars {
		n := 0
		if maxVal > 0 {
			n = b.Value * track / maxVal
		}
		if n == 0 && b.Value > 0 {
			n = 1
		}
		label := truncate.StringWithTail(b.Label, uint(labelWidth), "…")
		label += strings.Repeat(" ", labelWidth-lipgloss.Width(label))
		fill := b.Style.Render(strings.Repeat("█", n)) + strings.Repeat(" ", track-n)
		value := fmt.Sprintf("%*d", valueWidth, b.Value)
		lines = append(lines, opts.LabelStyle.Render(label)+" "+fill+" "+opts.ValueStyle.Render(value))
	}
	return lines
}
