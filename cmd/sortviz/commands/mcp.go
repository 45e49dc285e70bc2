package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"

	"github.com/ansonlam23/algorithm-visualizer/internal/engine"
	"github.com/ansonlam23/algorithm-visualizer/internal/mcp"
	"github.com/ansonlam23/algorithm-visualizer/internal/observability"
)

// NewMCPCommand creates the MCP server command.
func NewMCPCommand() *cobra.Command {
	var (
		debug       bool
		diagnostics string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for AI agent integration",
		Long: `Start a Model Context Protocol (MCP) server on stdio transport.

The MCP server exposes trace generation as tools that AI agents can discover
and invoke:
  - sort_trace: snapshots of one algorithm over an input, optionally windowed
  - sort_algorithms: the algorithm catalog with complexities
  - sort_compare: step and operation counts of every algorithm on one input

With --diagnostics, /healthz, /readyz and /metrics are served on that address.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cobraCmd)
			if err != nil {
				return err
			}

			// stdout carries the protocol; logs stay JSON on stderr.
			cfg.Observability.LogJSON = true

			providers, err := initObservability(cfg, observability.ModeMCP, debug)
			if err != nil {
				return err
			}

			defer shutdownObservability(providers)

			meter := providers.Meter

			var prom *observability.Prometheus

			if diagnostics != "" {
				prom, err = observability.NewPrometheus()
				if err != nil {
					return err
				}

				meter = prom.Meter()
			}

			svc, err := newEngine(cfg, providers, meter)
			if err != nil {
				return err
			}

			if prom != nil {
				diag, diagErr := observability.NewDiagnosticsServer(diagnostics, prom, svc.ReadyCheck())
				if diagErr != nil {
					return diagErr
				}

				providers.Logger.Info("diagnostics listening", "addr", diag.Addr())

				defer closeDiagnostics(providers, diag)
			}

			return runMCP(cobraCmd.Context(), providers, meter, svc)
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging to stderr")
	cmd.Flags().StringVar(&diagnostics, "diagnostics", "", "Serve health and metrics endpoints on this address")

	return cmd
}

func runMCP(ctx context.Context, providers observability.Providers, meter metric.Meter, svc *engine.Service) error {
	red, err := observability.NewREDMetrics(meter)
	if err != nil {
		return err
	}

	srv := mcp.NewServer(mcp.ServerDeps{
		Logger:  providers.Logger,
		Metrics: red,
		Tracer:  providers.Tracer,
		Engine:  svc,
	})

	return srv.Run(ctx)
}

func closeDiagnostics(providers observability.Providers, diag *observability.DiagnosticsServer) {
	err := diag.Close(context.Background())
	if err != nil {
		providers.Logger.Warn("diagnostics shutdown failed", "error", err)
	}
}
