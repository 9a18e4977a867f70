package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ErikTaylerd/soletear-calculator/internal/config"
	"github.com/ErikTaylerd/soletear-calculator/internal/logging"
)

// setupCommand loads configuration and configures logging for a command run.
// The resulting logger and a trace ID are attached to the command context so
// downstream packages can log via logging.FromContext.
func setupCommand(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	config.SetGlobalConfig(cfg)

	loggingCfg := cfg.Logging
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}
	if envLevel := os.Getenv("SOLETEAR_LOG_LEVEL"); envLevel != "" {
		loggingCfg.Level = envLevel
	}

	root := logging.New(logging.Config{
		Level:  loggingCfg.Level,
		Format: loggingCfg.Format,
		File:   loggingCfg.File,
	})
	logger = logging.ComponentLogger(root, "cli")

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")
	return nil
}
