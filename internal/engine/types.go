// Package engine implements the ROI computation core for the soletear
// solar hot-water calculator: input sanitization and the pure mapping
// from household assumptions to savings, payback, and a cumulative
// cash-flow projection.
package engine

import (
	"encoding/json"
	"math"
)

// Default assumptions matching the marketing widget.
const (
	// DefaultSavingsRatio is the fraction of the hot-water energy cost the
	// product is assumed to offset.
	DefaultSavingsRatio = 0.66
	// DefaultHorizonYears is the default projection length.
	DefaultHorizonYears = 15
	// DefaultKwhPerPerson is the default annual hot-water energy use per person.
	DefaultKwhPerPerson = 1000
	// DefaultMaintenance is the default fixed yearly maintenance cost.
	DefaultMaintenance = 0.0
	// RoiWindowYears is the fixed window for the ROI figure. It is
	// intentionally independent of the projection horizon.
	RoiWindowYears = 10
)

// Inputs holds one calculation's worth of sanitized input state.
//
// The three pointer fields are the user-required assumptions; nil means the
// field has no committed value yet (empty or unparseable text). The remaining
// fields are always well-formed: they come from configuration or carry
// defaults and are never raw user text.
type Inputs struct {
	HouseholdSize    *float64
	ElectricityPrice *float64
	KwhPerPerson     *float64

	SystemCost   float64
	Grant        float64
	Maintenance  float64
	SavingsRatio float64
	HorizonYears int
}

// Complete reports whether every user-required field holds a value.
// Compute short-circuits to a degenerate result when this is false.
func (in Inputs) Complete() bool {
	return in.HouseholdSize != nil && in.ElectricityPrice != nil && in.KwhPerPerson != nil
}

// CashFlowPoint is one year of the cumulative net cash position.
// Values are integer-rounded running totals; year 0 is -upfront.
type CashFlowPoint struct {
	Year  int `json:"year"`
	Value int `json:"value"`
}

// Results is the derived, read-only record the presentation layer consumes.
// It is recomputed from scratch on every input change.
type Results struct {
	AnnualHotWaterKwh  float64         `json:"annual_hot_water_kwh"`
	AnnualHotWaterCost float64         `json:"annual_hot_water_cost"`
	AnnualSavings      float64         `json:"annual_savings"`
	NetAnnualSavings   float64         `json:"net_annual_savings"`
	Upfront            float64         `json:"upfront"`
	PaybackYears       float64         `json:"-"`
	CashFlow           []CashFlowPoint `json:"cash_flow"`
	TenYearRoi         float64         `json:"ten_year_roi"`
}

// PaybackBounded reports whether the upfront cost is ever recovered.
// When false, PaybackYears holds the +Inf sentinel.
func (r Results) PaybackBounded() bool {
	return !math.IsInf(r.PaybackYears, 1)
}

// MarshalJSON encodes PaybackYears as null when payback is unbounded,
// so the sentinel never leaks as a non-finite number into JSON output.
func (r Results) MarshalJSON() ([]byte, error) {
	type alias Results
	out := struct {
		alias
		PaybackYears *float64 `json:"payback_years"`
	}{alias: alias(r)}
	if r.PaybackBounded() {
		out.PaybackYears = &r.PaybackYears
	}
	return json.Marshal(out)
}
