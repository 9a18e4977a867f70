// Package cli wires the soletear commands: the one-shot estimate, the
// interactive calculator, and config management.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the soletear CLI.
// It wires up logging and the estimate and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "soletear",
		Short:         "Solar hot-water savings calculator",
		Long:          "soletear: estimate annual savings, payback time, and projected cash flow for a solar hot-water system",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupCommand(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(NewEstimateCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # One-shot estimate for a 3-person household
  soletear estimate --household 3 --price 1,95 --cost 29000

  # Include a grant and a longer horizon
  soletear estimate --household 4 --price 2.10 --cost 29000 --grant 5000 --horizon 20

  # Structured output
  soletear estimate --household 3 --price 1.95 --cost 29000 --output json

  # Interactive calculator
  soletear estimate --interactive

  # Write the default configuration file
  soletear config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
