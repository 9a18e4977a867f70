package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/ErikTaylerd/soletear-calculator/internal/engine"
	"github.com/ErikTaylerd/soletear-calculator/internal/format"
)

// Chart layout constants.
const (
	chartDefaultHeight = 9
	chartLabelWidth    = 10
	chartColumnWidth   = 2
	pointGlyph         = "●"
	axisGlyph          = "─"
)

// RenderCashFlowChart renders the cumulative cash-flow series as a
// fixed-height ASCII line chart with a zero axis. Points below zero use the
// warning color, points at or above zero the OK color, so break-even is
// visible at a glance.
func RenderCashFlowChart(points []engine.CashFlowPoint, f *format.Formatter, height int) string {
	if len(points) == 0 {
		return SubtleStyle.Render("No projection to display.")
	}
	if height <= 0 {
		height = chartDefaultHeight
	}

	minVal, maxVal := 0, 0
	for _, p := range points {
		if p.Value < minVal {
			minVal = p.Value
		}
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}
	span := maxVal - minVal
	if span == 0 {
		span = 1
	}

	// Row index for a value, with row 0 at the top (maxVal).
	rowFor := func(v int) int {
		return (maxVal - v) * (height - 1) / span
	}
	zeroRow := rowFor(0)

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("CUMULATIVE CASH FLOW"))
	sb.WriteString("\n")

	for row := 0; row < height; row++ {
		sb.WriteString(yLabel(row, zeroRow, minVal, maxVal, height, f))
		for _, p := range points {
			cell := " "
			onAxis := row == zeroRow
			if rowFor(p.Value) == row {
				cell = pointGlyph
				if p.Value < 0 {
					cell = WarnStyle.Render(cell)
				} else {
					cell = OKStyle.Render(cell)
				}
			} else if onAxis {
				cell = SubtleStyle.Render(axisGlyph)
			}
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(padGlyph(onAxis), chartColumnWidth-1))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(xAxisLabels(points))
	sb.WriteString("\n")
	sb.WriteString(breakEvenLine(points))

	return sb.String()
}

// padGlyph continues the zero axis between columns.
func padGlyph(onAxis bool) string {
	if onAxis {
		return SubtleStyle.Render(axisGlyph)
	}
	return " "
}

// yLabel renders the left-hand value label for chart rows that carry one:
// the top (max), the zero axis, and the bottom (min).
func yLabel(row, zeroRow, minVal, maxVal, height int, f *format.Formatter) string {
	label := ""
	switch row {
	case 0:
		label = f.Number(int64(maxVal))
	case zeroRow:
		label = "0"
	case height - 1:
		label = f.Number(int64(minVal))
	}
	return SubtleStyle.Render(fmt.Sprintf("%*s ", chartLabelWidth, label))
}

// xAxisLabels renders first/last year markers under the chart.
func xAxisLabels(points []engine.CashFlowPoint) string {
	first := points[0].Year
	last := points[len(points)-1].Year
	width := len(points) * chartColumnWidth
	firstLabel := "yr " + strconv.Itoa(first)
	lastLabel := "yr " + strconv.Itoa(last)

	gap := width - len(firstLabel) - len(lastLabel)
	if gap < 1 {
		gap = 1
	}
	return SubtleStyle.Render(strings.Repeat(" ", chartLabelWidth+1) +
		firstLabel + strings.Repeat(" ", gap) + lastLabel)
}

// breakEvenLine reports the first year the cumulative position reaches zero.
func breakEvenLine(points []engine.CashFlowPoint) string {
	for _, p := range points {
		if p.Value >= 0 {
			if p.Year == 0 {
				return OKStyle.Render("Break-even immediately (no net upfront cost).")
			}
			return OKStyle.Render(fmt.Sprintf("Break-even in year %d.", p.Year))
		}
	}
	return WarnStyle.Render("No break-even within the projection horizon.")
}

// NewCashFlowTable creates a year-by-year table of the projection series.
func NewCashFlowTable(points []engine.CashFlowPoint, f *format.Formatter, height int) table.Model {
	columns := []table.Column{
		{Title: "Year", Width: 6},
		{Title: "Net position", Width: 18},
	}

	rows := make([]table.Row, len(points))
	for i, p := range points {
		rows[i] = table.Row{strconv.Itoa(p.Year), f.Currency(float64(p.Value))}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = HeaderStyle
	s.Selected = FocusedFieldStyle
	t.SetStyles(s)

	return t
}
