package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ErikTaylerd/soletear-calculator/internal/config"
)

// NewConfigShowCmd creates the "config show" command, which prints the
// effective configuration (file layered over defaults) as YAML.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(config.GetGlobalConfig())
			if err != nil {
				return err
			}
			cmd.Print(string(data))
			return nil
		},
	}
}
