package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ErikTaylerd/soletear-calculator/internal/config"
)

// NewConfigInitCmd creates the "config init" command, which writes a config
// file populated with the product defaults.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write a configuration file populated with the default calculator
assumptions (maintenance, savings ratio, horizon) and presentation settings.
Refuses to overwrite an existing file unless --force is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.Path()

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
			}

			cfg := config.Default()
			if err := cfg.Save(); err != nil {
				return err
			}

			logger.Info().Str("path", path).Msg("wrote default configuration")
			cmd.Printf("Wrote default configuration to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
