package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ansonlam23/algorithm-visualizer/internal/config"
	"github.com/ansonlam23/algorithm-visualizer/internal/observability"
	"github.com/ansonlam23/algorithm-visualizer/internal/server"
)

// ServeCommand runs the JSON HTTP API.
type ServeCommand struct {
	addr  string
	debug bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	sc := &ServeCommand{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve traces over HTTP",
		Long: `Start the JSON API:
  GET  /api/algorithms          algorithm catalog
  POST /api/trace               {"algorithm", "values", "start", "limit"}
  GET  /api/compare?values=...  counts of every algorithm on one input
  GET  /healthz, /readyz, /metrics`,
		Args: cobra.NoArgs,
		RunE: sc.run,
	}

	cmd.Flags().StringVar(&sc.addr, "addr", "", "Listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&sc.debug, "debug", false, "Enable debug logging")

	return cmd
}

func (sc *ServeCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	err = cfg.Apply(config.Overrides{Addr: sc.addr})
	if err != nil {
		return err
	}

	providers, err := initObservability(cfg, observability.ModeServe, sc.debug)
	if err != nil {
		return err
	}

	defer shutdownObservability(providers)

	prom, err := observability.NewPrometheus()
	if err != nil {
		return err
	}

	svc, err := newEngine(cfg, providers, prom.Meter())
	if err != nil {
		return err
	}

	red, err := observability.NewREDMetrics(prom.Meter())
	if err != nil {
		return err
	}

	handler := server.NewHandler(server.Deps{
		Tracer:     providers.Tracer,
		RED:        red,
		Prometheus: prom,
		Engine:     svc,
	})

	srv, err := server.Listen(cfg.Server.Addr, handler, providers.Logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx)
}
