package tui

import (
	"strings"

	"github.com/ErikTaylerd/soletear-calculator/internal/engine"
	"github.com/ErikTaylerd/soletear-calculator/internal/format"
)

// Default box width for the summary view.
const summaryWidth = 64

// RenderSummary renders the four headline statistics as a boxed block:
// annual savings, payback period, ten-year return, and upfront cost.
// While required fields are still empty the zeros from the degenerate
// result render as-is; the widget always shows something.
func RenderSummary(res engine.Results, f *format.Formatter, width int) string {
	if width <= 0 {
		width = summaryWidth
	}

	var content strings.Builder

	content.WriteString(HeaderStyle.Render("ESTIMATED RETURN"))
	content.WriteString("\n\n")

	writeStat(&content, "Annual savings:   ", f.Currency(res.NetAnnualSavings)+"/yr")

	payback := f.Years(res.PaybackYears) + " yr"
	if !res.PaybackBounded() {
		payback = format.UnboundedMarker
	}
	writeStat(&content, "Payback period:   ", payback)

	writeStat(&content, "10-year return:   ", f.Percent(res.TenYearRoi))
	writeStat(&content, "Upfront cost:     ", f.Currency(res.Upfront))

	content.WriteString("\n")
	content.WriteString(SubtleStyle.Render("Estimate only. Actual savings depend on usage and prices."))

	return BoxStyle.Width(width - 2).Render(content.String())
}

func writeStat(content *strings.Builder, label, value string) {
	content.WriteString(LabelStyle.Render(label))
	content.WriteString(ValueStyle.Render(value))
	content.WriteString("\n")
}
