package engine

import (
	"context"
	"math"

	"github.com/ErikTaylerd/soletear-calculator/internal/logging"
)

// Compute derives the full results record from the current input state.
//
// It never fails: while any required field is still empty or invalid it
// returns a degenerate all-zero result with a correctly sized cash-flow
// series, so the presentation layer always receives a structurally valid
// record even mid-edit. The only non-finite output is the unbounded-payback
// sentinel (math.Inf(1)), produced when net annual savings cannot recover
// the upfront cost.
func Compute(in Inputs) Results {
	upfront := math.Max(in.SystemCost-in.Grant, 0)

	if !in.Complete() {
		return Results{
			Upfront:      upfront,
			PaybackYears: math.Inf(1),
			CashFlow:     zeroSeries(in.HorizonYears),
		}
	}

	annualKwh := *in.HouseholdSize * *in.KwhPerPerson
	annualCost := annualKwh * *in.ElectricityPrice
	annualSavings := annualCost * in.SavingsRatio
	// Maintenance only absorbs savings; it never drives them negative.
	netSavings := math.Max(annualSavings-in.Maintenance, 0)

	payback := math.Inf(1)
	if netSavings > 0 {
		payback = upfront / netSavings
	}

	roi := 0.0
	if upfront > 0 {
		roi = (netSavings*RoiWindowYears - upfront) / upfront
	}

	return Results{
		AnnualHotWaterKwh:  annualKwh,
		AnnualHotWaterCost: annualCost,
		AnnualSavings:      annualSavings,
		NetAnnualSavings:   netSavings,
		Upfront:            upfront,
		PaybackYears:       payback,
		CashFlow:           cashFlowSeries(upfront, netSavings, in.HorizonYears),
		TenYearRoi:         roi,
	}
}

// ComputeContext is Compute with debug logging of the derived figures.
// The computation itself is pure and synchronous.
func ComputeContext(ctx context.Context, in Inputs) Results {
	res := Compute(in)

	logging.FromContext(ctx).Debug().
		Str("component", "engine").
		Str("operation", "compute").
		Bool("complete", in.Complete()).
		Float64("net_annual_savings", res.NetAnnualSavings).
		Float64("upfront", res.Upfront).
		Bool("payback_bounded", res.PaybackBounded()).
		Msg("derived results recomputed")

	return res
}

// cashFlowSeries builds the cumulative net cash position for years
// 0..horizon. Rounding is applied to the running total at every step, not
// re-derived from the raw increments; changing that would change the literal
// integers in the series.
func cashFlowSeries(upfront, netSavings float64, horizon int) []CashFlowPoint {
	if horizon < 0 {
		horizon = 0
	}

	series := make([]CashFlowPoint, 0, horizon+1)
	running := int(math.Round(-upfront))
	series = append(series, CashFlowPoint{Year: 0, Value: running})

	for year := 1; year <= horizon; year++ {
		running = int(math.Round(float64(running) + netSavings))
		series = append(series, CashFlowPoint{Year: year, Value: running})
	}
	return series
}

// zeroSeries returns horizon+1 zero-valued points for the mid-edit guard path.
func zeroSeries(horizon int) []CashFlowPoint {
	if horizon < 0 {
		horizon = 0
	}
	series := make([]CashFlowPoint, horizon+1)
	for i := range series {
		series[i].Year = i
	}
	return series
}

// Float returns a pointer to v, for building Inputs from sanitized values.
func Float(v float64) *float64 { return &v }
