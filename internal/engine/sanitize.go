package engine

import (
	"math"
	"strconv"
	"strings"
)

// FieldRule describes how one input field is sanitized: the lowest value it
// may take, and whether fractional input is floored to a whole number.
// No upper bound is enforced on any field, so legitimate large inputs are
// never silently overridden.
type FieldRule struct {
	Min     float64
	Integer bool
}

// Sanitization rules per input field.
var (
	HouseholdSizeRule    = FieldRule{Min: 1, Integer: true}
	ElectricityPriceRule = FieldRule{Min: 0.1}
	SystemCostRule       = FieldRule{Min: 0, Integer: true}
	GrantRule            = FieldRule{Min: 0, Integer: true}
	KwhPerPersonRule     = FieldRule{Min: 500, Integer: true}
)

// Sanitize normalizes one raw field value into the numeric domain Compute
// requires. Empty or unparseable text yields ok=false ("no value yet") so a
// field being typed into is never clamped out from under the user. A decimal
// comma is accepted in place of a decimal point.
func (r FieldRule) Sanitize(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	if r.Integer {
		v = math.Floor(v)
	}
	if v < r.Min {
		v = r.Min
	}
	return v, true
}

// Commit applies the blur-time policy: a field that still has no valid value
// when it loses focus falls back to its minimum, so no field persists as
// permanently invalid after a blur event.
func (r FieldRule) Commit(raw string) float64 {
	if v, ok := r.Sanitize(raw); ok {
		return v
	}
	return r.Min
}
