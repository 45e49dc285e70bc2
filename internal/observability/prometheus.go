package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Prometheus pairs a /metrics scrape handler with the MeterProvider that
// feeds it. Instruments created from Meter appear in the scrape output.
type Prometheus struct {
	Handler  http.Handler
	Provider *sdkmetric.MeterProvider
}

// NewPrometheus creates an OTel Prometheus exporter on a private registry,
// so repeated calls never conflict.
func NewPrometheus() (*Prometheus, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	return &Prometheus{
		Handler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Provider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter)),
	}, nil
}

// Meter returns the sortviz meter backed by the scrape registry.
func (p *Prometheus) Meter() metric.Meter {
	return p.Provider.Meter(meterName)
}
