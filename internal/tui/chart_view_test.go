package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErikTaylerd/soletear-calculator/internal/engine"
	"github.com/ErikTaylerd/soletear-calculator/internal/format"
)

func referenceResults() engine.Results {
	return engine.Compute(engine.Inputs{
		HouseholdSize:    engine.Float(3),
		ElectricityPrice: engine.Float(1.95),
		KwhPerPerson:     engine.Float(1000),
		SystemCost:       29000,
		SavingsRatio:     engine.DefaultSavingsRatio,
		HorizonYears:     engine.DefaultHorizonYears,
	})
}

func TestRenderCashFlowChart(t *testing.T) {
	f := format.New("en", "kr")
	out := RenderCashFlowChart(referenceResults().CashFlow, f, 0)

	assert.Contains(t, out, "CUMULATIVE CASH FLOW")
	assert.Contains(t, out, "yr 0")
	assert.Contains(t, out, "yr 15")
	// Cumulative savings of ~3,861/yr against 29,000 upfront cross zero in year 8.
	assert.Contains(t, out, "Break-even in year 8.")
}

func TestRenderCashFlowChartNoBreakEven(t *testing.T) {
	f := format.New("en", "kr")
	points := []engine.CashFlowPoint{{Year: 0, Value: -1000}, {Year: 1, Value: -1000}}

	out := RenderCashFlowChart(points, f, 0)
	assert.Contains(t, out, "No break-even within the projection horizon.")
}

func TestRenderCashFlowChartImmediateBreakEven(t *testing.T) {
	f := format.New("en", "kr")
	points := []engine.CashFlowPoint{{Year: 0, Value: 0}, {Year: 1, Value: 500}}

	out := RenderCashFlowChart(points, f, 0)
	assert.Contains(t, out, "Break-even immediately")
}

func TestRenderCashFlowChartEmpty(t *testing.T) {
	f := format.New("en", "kr")
	assert.Contains(t, RenderCashFlowChart(nil, f, 0), "No projection")
}

func TestRenderCashFlowChartRowCount(t *testing.T) {
	f := format.New("en", "kr")
	out := RenderCashFlowChart(referenceResults().CashFlow, f, 9)

	// Header + 9 chart rows + axis labels + break-even line.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 12)
}

func TestNewCashFlowTable(t *testing.T) {
	f := format.New("en", "kr")
	tbl := NewCashFlowTable(referenceResults().CashFlow, f, 8)

	view := tbl.View()
	assert.Contains(t, view, "Year")
	assert.Contains(t, view, "Net position")
}

func TestRenderSummary(t *testing.T) {
	f := format.New("en", "kr")
	out := RenderSummary(referenceResults(), f, 0)

	assert.Contains(t, out, "ESTIMATED RETURN")
	assert.Contains(t, out, "Annual savings")
	assert.Contains(t, out, "3,861 kr/yr")
	assert.Contains(t, out, "7.5 yr")
	assert.Contains(t, out, "33 %")
	assert.Contains(t, out, "29,000 kr")
	assert.Contains(t, out, "Estimate only")
}

func TestRenderSummaryUnboundedPayback(t *testing.T) {
	f := format.New("en", "kr")
	res := engine.Compute(engine.Inputs{SystemCost: 29000, HorizonYears: 15})
	require.False(t, res.PaybackBounded())

	out := RenderSummary(res, f, 0)
	assert.Contains(t, out, format.UnboundedMarker)
}
