// Package format renders the calculator's figures for humans: locale-aware
// thousand separators, whole-unit currency amounts, and the unbounded-payback
// marker.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// UnboundedMarker is shown when the upfront cost is never recovered.
const UnboundedMarker = "—"

// Formatter renders numbers and currency amounts for one locale.
type Formatter struct {
	printer  *message.Printer
	currency string
}

// New creates a Formatter for the given BCP 47 locale tag and currency unit.
// An unparseable locale falls back to Swedish, the widget's home market.
func New(locale, currency string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Swedish
	}
	return &Formatter{
		printer:  message.NewPrinter(tag),
		currency: currency,
	}
}

// Number formats an integer with locale-appropriate thousand separators.
func (f *Formatter) Number(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// Currency formats an amount rounded to whole units with the currency suffix.
// Example (sv, "kr"): Currency(3861.4) returns "3 861 kr".
func (f *Formatter) Currency(amount float64) string {
	return f.printer.Sprintf("%d %s", int64(math.Round(amount)), f.currency)
}

// Years formats a payback period with one decimal, or the unbounded marker
// for the +Inf sentinel.
func (f *Formatter) Years(years float64) string {
	if math.IsInf(years, 1) {
		return UnboundedMarker
	}
	return f.printer.Sprintf("%.1f", years)
}

// Percent formats a ratio as a whole-number percentage.
// Example: Percent(0.331) returns "33 %".
func (f *Formatter) Percent(ratio float64) string {
	return fmt.Sprintf("%d %%", int64(math.Round(ratio*100)))
}
