package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/numex/internal/cli/config"
	"github.com/leapstack-labs/numex/internal/cli/output"
)

// CommandContext bundles what every command needs: the loaded config, a
// renderer for the effective output mode, and the logger from context.
type CommandContext struct {
	Cfg      *config.Config
	Renderer *output.Renderer
	Logger   *slog.Logger
}

// NewCommandContext builds the command context. The format argument, when
// non-empty, overrides the configured output mode (commands expose it as
// a local --format flag).
func NewCommandContext(cmd *cobra.Command, format string) *CommandContext {
	cfg := config.GetCurrentConfig()
	if cfg == nil {
		cfg = &config.Config{
			TemplatesDir: config.DefaultTemplatesDir,
			OutputFormat: config.DefaultOutput,
		}
	}

	mode := output.Mode(cfg.OutputFormat)
	if format != "" {
		mode = output.Mode(format)
	}

	return &CommandContext{
		Cfg:      cfg,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
		Logger:   config.GetLogger(cmd.Context()),
	}
}
