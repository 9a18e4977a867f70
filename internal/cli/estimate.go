package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ErikTaylerd/soletear-calculator/internal/config"
	"github.com/ErikTaylerd/soletear-calculator/internal/engine"
	"github.com/ErikTaylerd/soletear-calculator/internal/format"
	"github.com/ErikTaylerd/soletear-calculator/internal/tui"
)

// estimateParams holds the raw flag values for the estimate command.
// Numeric flags are taken as text so locale input like "1,95" sanitizes the
// same way it does in the form.
type estimateParams struct {
	household   string
	price       string
	cost        string
	grant       string
	kwh         string
	horizon     int
	output      string
	interactive bool
}

// NewEstimateCmd creates the "estimate" command.
//
// Registered flags:
//   - --household: number of people in the household
//   - --price: electricity price per kWh (decimal comma accepted)
//   - --cost: system cost before grant
//   - --grant: upfront subsidy (default 0)
//   - --kwh: annual hot-water use per person (default from configuration)
//   - --horizon: projection length in years (default from configuration)
//   - --output: output format, one of table, json, or ndjson
//   - --interactive: launch the full-screen calculator
func NewEstimateCmd() *cobra.Command {
	var params estimateParams

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate savings and payback for a solar hot-water system",
		Long: `Estimate annual savings, payback period, a cumulative cash-flow projection,
and the ten-year return for a solar hot-water system.

Missing required inputs never fail the calculation: the result degrades to
zeros, exactly like the widget mid-edit. The figures are estimates only.`,
		Example: estimateExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeEstimate(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.household, "household", "", "Number of people in the household")
	cmd.Flags().StringVar(&params.price, "price", "", "Electricity price per kWh (e.g. 1.95 or 1,95)")
	cmd.Flags().StringVar(&params.cost, "cost", "", "System cost before grant")
	cmd.Flags().StringVar(&params.grant, "grant", "", "Upfront grant amount")
	cmd.Flags().StringVar(&params.kwh, "kwh", "", "Annual hot-water use per person in kWh")
	cmd.Flags().IntVar(&params.horizon, "horizon", 0, "Projection horizon in years (0 = config default)")
	cmd.Flags().StringVar(&params.output, "output", string(engine.OutputTable), "Output format: table, json, or ndjson")
	cmd.Flags().BoolVar(&params.interactive, "interactive", false, "Launch the interactive calculator")

	return cmd
}

const estimateExample = `  # Three people, 1.95 kr/kWh, 29 000 kr system
  soletear estimate --household 3 --price 1,95 --cost 29000

  # JSON record for scripting
  soletear estimate --household 3 --price 1.95 --cost 29000 --output json

  # Cash-flow series as NDJSON, one point per line
  soletear estimate --household 3 --price 1.95 --cost 29000 --output ndjson

  # Full-screen calculator
  soletear estimate --interactive`

// executeEstimate runs the estimate command: it assembles engine inputs from
// flags and configuration, computes the derived results, and renders them in
// the chosen format (or hands off to the interactive calculator).
func executeEstimate(cmd *cobra.Command, params estimateParams) error {
	cfg := config.GetGlobalConfig()
	formatter := format.New(cfg.Presentation.Locale, cfg.Presentation.Currency)

	horizon := cfg.Calculator.HorizonYears
	if params.horizon > 0 {
		horizon = params.horizon
	}

	if params.interactive {
		if !isTerminal(os.Stdout) {
			return errors.New("--interactive requires a terminal")
		}
		return runInteractiveCalculator(cmd, cfg, formatter, horizon)
	}

	inputs, err := buildInputs(params, cfg, horizon)
	if err != nil {
		return err
	}

	results := engine.ComputeContext(cmd.Context(), inputs)

	outputFormat := engine.OutputFormat(params.output)
	if !engine.ValidOutputFormat(outputFormat) {
		return fmt.Errorf("unsupported output format: %s", params.output)
	}

	if outputFormat != engine.OutputTable {
		return engine.RenderResults(cmd.OutOrStdout(), outputFormat, results)
	}

	if !inputs.Complete() {
		cmd.Println(tui.SubtleStyle.Render(
			"Provide --household and --price for a full estimate; showing the empty baseline."))
	}
	cmd.Println(tui.RenderSummary(results, formatter, 0))
	cmd.Println(tui.RenderCashFlowChart(results.CashFlow, formatter, 0))
	return nil
}

// buildInputs turns flag text into sanitized engine inputs. A provided but
// unparseable flag is a CLI error; an omitted required flag simply stays
// absent, which routes the engine down its degenerate path.
func buildInputs(params estimateParams, cfg *config.Config, horizon int) (engine.Inputs, error) {
	in := engine.Inputs{
		Maintenance:  cfg.Calculator.Maintenance,
		SavingsRatio: cfg.Calculator.SavingsRatio,
		HorizonYears: horizon,
		KwhPerPerson: engine.Float(cfg.Calculator.KwhPerPerson),
	}

	set := func(dst **float64, raw, flag string, rule engine.FieldRule) error {
		if raw == "" {
			return nil
		}
		v, ok := rule.Sanitize(raw)
		if !ok {
			return fmt.Errorf("invalid --%s value: %q", flag, raw)
		}
		*dst = engine.Float(v)
		return nil
	}

	if err := set(&in.HouseholdSize, params.household, "household", engine.HouseholdSizeRule); err != nil {
		return engine.Inputs{}, err
	}
	if err := set(&in.ElectricityPrice, params.price, "price", engine.ElectricityPriceRule); err != nil {
		return engine.Inputs{}, err
	}
	if err := set(&in.KwhPerPerson, params.kwh, "kwh", engine.KwhPerPersonRule); err != nil {
		return engine.Inputs{}, err
	}

	if params.cost != "" {
		v, ok := engine.SystemCostRule.Sanitize(params.cost)
		if !ok {
			return engine.Inputs{}, fmt.Errorf("invalid --cost value: %q", params.cost)
		}
		in.SystemCost = v
	}
	if params.grant != "" {
		v, ok := engine.GrantRule.Sanitize(params.grant)
		if !ok {
			return engine.Inputs{}, fmt.Errorf("invalid --grant value: %q", params.grant)
		}
		in.Grant = v
	}

	return in, nil
}

// runInteractiveCalculator launches the full-screen bubbletea calculator.
func runInteractiveCalculator(
	cmd *cobra.Command,
	cfg *config.Config,
	formatter *format.Formatter,
	horizon int,
) error {
	model := tui.NewCalculatorModel(cmd.Context(), tui.CalculatorOptions{
		Maintenance:  cfg.Calculator.Maintenance,
		SavingsRatio: cfg.Calculator.SavingsRatio,
		HorizonYears: horizon,
		Formatter:    formatter,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive calculator failed: %w", err)
	}
	return nil
}
