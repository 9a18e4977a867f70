package cli

import (
	"github.com/spf13/cobra"

	"github.com/ErikTaylerd/soletear-calculator/internal/config"
)

// NewConfigValidateCmd creates the "config validate" command, which checks
// the config file's schema version and value ranges.
func NewConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			cmd.Println("Configuration is valid.")
			return nil
		},
	}
}
