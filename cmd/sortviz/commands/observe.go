package commands

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/metric"

	"github.com/ansonlam23/algorithm-visualizer/internal/config"
	"github.com/ansonlam23/algorithm-visualizer/internal/engine"
	"github.com/ansonlam23/algorithm-visualizer/internal/observability"
	"github.com/ansonlam23/algorithm-visualizer/internal/tracecache"
	"github.com/ansonlam23/algorithm-visualizer/pkg/version"
)

// observabilityConfig merges the config file with the standard OTEL_*
// variables, which win when set.
func observabilityConfig(cfg *config.Config, mode observability.AppMode, debug bool) (observability.Config, error) {
	obs := observability.DefaultConfig()
	obs.ServiceVersion = version.Version
	obs.Mode = mode
	obs.Environment = cfg.Observability.Environment
	obs.OTLPEndpoint = cfg.Observability.OTLPEndpoint
	obs.OTLPInsecure = cfg.Observability.OTLPInsecure
	obs.LogJSON = cfg.Observability.LogJSON

	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		obs.OTLPEndpoint = endpoint
	}

	obs.OTLPHeaders = observability.ParseOTLPHeaders(os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))

	if os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") == "true" {
		obs.OTLPInsecure = true
	}

	level, err := observability.ParseLogLevel(cfg.Observability.LogLevel)
	if err != nil {
		return observability.Config{}, err
	}

	obs.LogLevel = level

	if debug {
		obs.LogLevel = slog.LevelDebug
	}

	return obs, nil
}

func initObservability(cfg *config.Config, mode observability.AppMode, debug bool) (observability.Providers, error) {
	obs, err := observabilityConfig(cfg, mode, debug)
	if err != nil {
		return observability.Providers{}, err
	}

	return observability.Init(obs)
}

func shutdownObservability(providers observability.Providers) {
	err := providers.Shutdown(context.Background())
	if err != nil {
		providers.Logger.Warn("observability shutdown failed", "error", err)
	}
}

// newEngine builds the cached, instrumented trace engine shared by the
// mcp and serve commands.
func newEngine(cfg *config.Config, providers observability.Providers, meter metric.Meter) (*engine.Service, error) {
	gen, err := observability.NewGenerationMetrics(meter)
	if err != nil {
		return nil, err
	}

	deps := engine.Deps{
		Logger:  providers.Logger,
		Tracer:  providers.Tracer,
		Metrics: gen,
	}

	if cfg.Server.CacheEntries > 0 {
		deps.Cache = tracecache.New(cfg.Server.CacheEntries)
	}

	return engine.New(cfg.Server.MaxInput, deps), nil
}
