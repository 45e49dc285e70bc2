package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ansonlam23/algorithm-visualizer/internal/config"
	"github.com/ansonlam23/algorithm-visualizer/internal/observability"
)

// NewRootCommand assembles the sortviz command tree.
func NewRootCommand() *cobra.Command {
	var (
		verbose bool
		quiet   bool
	)

	rootCmd := &cobra.Command{
		Use:   "sortviz",
		Short: "Sortviz - step-by-step sorting algorithm traces",
		Long: `Sortviz records every comparison and exchange of six classic sorting
algorithms and replays them.

Commands:
  trace       Print every frame of a sort
  step        Show how values move between steps
  play        Interactive terminal player
  plot        HTML report of a trace or a comparison
  compare     Step and operation counts of every algorithm
  bench       Counts summarised over many random inputs
  export      Save a trace document
  validate    Check saved trace documents
  serve       JSON HTTP API
  mcp         MCP server for AI agents`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// A broken config file is reported by the subcommand that needs it.
			cfg, err := loadConfig(cmd)
			if err != nil {
				cfg = config.Default()
			}

			obs, err := rootLoggerConfig(cfg, verbose, quiet)
			if err != nil {
				obs = observability.DefaultConfig()
			}

			slog.SetDefault(observability.NewLogger(obs))
		},
	}

	rootCmd.PersistentFlags().String(ConfigFlag, "", "Config file (default: ./.sortviz.yaml or ~/.sortviz.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")

	rootCmd.AddCommand(
		NewTraceCommand(),
		NewStepCommand(),
		NewPlayCommand(),
		NewPlotCommand(),
		NewCompareCommand(),
		NewBenchCommand(),
		NewAlgorithmsCommand(),
		NewExportCommand(),
		NewValidateCommand(),
		NewServeCommand(),
		NewMCPCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}

// rootLoggerConfig derives the process logger from observability.log_level
// and observability.log_json. --quiet wins over --verbose.
func rootLoggerConfig(cfg *config.Config, verbose, quiet bool) (observability.Config, error) {
	obs, err := observabilityConfig(cfg, observability.ModeCLI, verbose)
	if err != nil {
		return observability.Config{}, err
	}

	if quiet {
		obs.LogLevel = slog.LevelError
	}

	return obs, nil
}
