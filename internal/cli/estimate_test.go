package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with args and returns captured output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SOLETEAR_CONFIG_DIR", t.TempDir())

	var buf bytes.Buffer
	root := NewRootCmd("test")
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestEstimateJSON(t *testing.T) {
	out, err := runCommand(t,
		"estimate", "--household", "3", "--price", "1.95", "--cost", "29000", "--output", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.InDelta(t, 3000, decoded["annual_hot_water_kwh"], 0.001)
	assert.InDelta(t, 5850, decoded["annual_hot_water_cost"], 0.001)
	assert.InDelta(t, 29000, decoded["upfront"], 0.001)
	assert.InDelta(t, 7.51, decoded["payback_years"], 0.01)
}

func TestEstimateAcceptsDecimalComma(t *testing.T) {
	out, err := runCommand(t,
		"estimate", "--household", "3", "--price", "1,95", "--cost", "29000", "--output", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.InDelta(t, 5850, decoded["annual_hot_water_cost"], 0.001)
}

func TestEstimateNDJSON(t *testing.T) {
	out, err := runCommand(t,
		"estimate", "--household", "3", "--price", "1.95", "--cost", "29000", "--output", "ndjson")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Default horizon of 15 years plus year zero.
	assert.Len(t, lines, 16)
	assert.JSONEq(t, `{"year":0,"value":-29000}`, lines[0])
}

func TestEstimateTableOutput(t *testing.T) {
	out, err := runCommand(t,
		"estimate", "--household", "3", "--price", "1.95", "--cost", "29000")
	require.NoError(t, err)

	assert.Contains(t, out, "ESTIMATED RETURN")
	assert.Contains(t, out, "CUMULATIVE CASH FLOW")
	assert.Contains(t, out, "Break-even in year 8.")
}

func TestEstimateMissingRequiredInputsDegrades(t *testing.T) {
	// Missing household/price never fails; the result degrades to the
	// zeroed baseline with a hint.
	out, err := runCommand(t, "estimate", "--cost", "29000")
	require.NoError(t, err)

	assert.Contains(t, out, "showing the empty baseline")
	assert.Contains(t, out, "ESTIMATED RETURN")
}

func TestEstimateMissingInputsJSONIsStructurallyValid(t *testing.T) {
	out, err := runCommand(t, "estimate", "--cost", "29000", "--output", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Nil(t, decoded["payback_years"])
	assert.InDelta(t, 29000, decoded["upfront"], 0.001)
	points, ok := decoded["cash_flow"].([]any)
	require.True(t, ok)
	assert.Len(t, points, 16)
}

func TestEstimateInvalidFlagValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"garbage household", []string{"estimate", "--household", "abc"}},
		{"garbage price", []string{"estimate", "--price", "x,y"}},
		{"garbage cost", []string{"estimate", "--cost", "much"}},
		{"garbage grant", []string{"estimate", "--grant", "-"}},
		{"garbage kwh", []string{"estimate", "--kwh", "?"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runCommand(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestEstimateUnsupportedOutputFormat(t *testing.T) {
	_, err := runCommand(t,
		"estimate", "--household", "3", "--price", "1.95", "--output", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestEstimateHorizonFlag(t *testing.T) {
	out, err := runCommand(t,
		"estimate", "--household", "3", "--price", "1.95", "--cost", "29000",
		"--horizon", "5", "--output", "ndjson")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 6)
}

func TestEstimateGrantReducesUpfront(t *testing.T) {
	out, err := runCommand(t,
		"estimate", "--household", "3", "--price", "1.95", "--cost", "29000",
		"--grant", "29000", "--output", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Zero(t, decoded["upfront"])
	assert.Zero(t, decoded["ten_year_roi"])
	assert.InDelta(t, 0, decoded["payback_years"], 0.001)
}
