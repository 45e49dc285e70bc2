// Package engine is the shared front door to trace generation for the MCP
// and HTTP surfaces: it bounds input size, serves repeated requests from the
// trace cache, and records spans, metrics and logs for every run.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/ansonlam23/algorithm-visualizer/internal/observability"
	"github.com/ansonlam23/algorithm-visualizer/internal/tracecache"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

// Sentinel errors.
var (
	// ErrInputTooLarge indicates the input exceeds the configured limit.
	ErrInputTooLarge = errors.New("input too large")
)

// Deps holds injectable collaborators. Zero-value fields disable the
// corresponding concern.
type Deps struct {
	Logger  *slog.Logger
	Tracer  trace.Tracer
	Metrics *observability.GenerationMetrics
	Cache   *tracecache.Cache
}

// Service generates traces on behalf of remote callers.
type Service struct {
	maxInput int
	logger   *slog.Logger
	tracer   trace.Tracer
	metrics  *observability.GenerationMetrics
	cache    *tracecache.Cache
}

// New creates a Service that rejects inputs longer than maxInput.
func New(maxInput int, deps Deps) *Service {
	svc := &Service{
		maxInput: maxInput,
		logger:   deps.Logger,
		tracer:   deps.Tracer,
		metrics:  deps.Metrics,
		cache:    deps.Cache,
	}

	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	if svc.tracer == nil {
		svc.tracer = nooptrace.NewTracerProvider().Tracer("")
	}

	return svc
}

// MaxInput returns the input length limit.
func (s *Service) MaxInput() int { return s.maxInput }

// Algorithms returns the static catalog.
func (s *Service) Algorithms() []sorting.Info { return sorting.Catalog() }

// Generate returns the trace and counters for alg over input.
func (s *Service) Generate(ctx context.Context, alg sorting.Algorithm, input []int) (sorting.Result, error) {
	ctx, span := s.tracer.Start(ctx, "sortviz.generate",
		trace.WithAttributes(
			attribute.String("sortviz.algorithm", string(alg)),
			attribute.Int("sortviz.input.size", len(input)),
		),
	)
	defer span.End()

	res, cached, err := s.generate(ctx, alg, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return sorting.Result{}, err
	}

	span.SetAttributes(
		attribute.Int("sortviz.snapshots", len(res.Trace)),
		attribute.Bool("cache.hit", cached),
	)

	return res, nil
}

// Compare runs every algorithm over the same input, in catalog order.
func (s *Service) Compare(ctx context.Context, input []int) ([]sorting.Result, error) {
	ctx, span := s.tracer.Start(ctx, "sortviz.compare",
		trace.WithAttributes(attribute.Int("sortviz.input.size", len(input))),
	)
	defer span.End()

	algs := sorting.Algorithms()
	out := make([]sorting.Result, 0, len(algs))

	for _, alg := range algs {
		res, _, err := s.generate(ctx, alg, input)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())

			return nil, err
		}

		out = append(out, res)
	}

	return out, nil
}

// CacheStats reports trace cache statistics; ok is false when caching is off.
func (s *Service) CacheStats() (tracecache.Stats, bool) {
	if s.cache == nil {
		return tracecache.Stats{}, false
	}

	return s.cache.Stats(), true
}

// Ready reports an error when the algorithm catalog is empty.
func (s *Service) Ready(_ context.Context) error {
	if len(sorting.Algorithms()) == 0 {
		return errors.New("no algorithms registered")
	}

	return nil
}

// ReadyCheck exposes Ready to the /readyz handlers.
func (s *Service) ReadyCheck() observability.ReadyCheck {
	return observability.ReadyCheck{Name: "catalog", Check: s.Ready}
}

func (s *Service) generate(ctx context.Context, alg sorting.Algorithm, input []int) (sorting.Result, bool, error) {
	if len(input) > s.maxInput {
		return sorting.Result{}, false, fmt.Errorf("%w: %d elements (max %d)", ErrInputTooLarge, len(input), s.maxInput)
	}

	if _, err := sorting.Lookup(alg); err != nil {
		return sorting.Result{}, false, err
	}

	ctx = observability.WithRun(ctx, string(alg), len(input))
	key := tracecache.KeyFor(alg, input)

	if s.cache != nil {
		if res, ok := s.cache.Get(key); ok {
			s.record(ctx, res, 0, true)

			return res, true, nil
		}
	}

	start := time.Now()

	res, err := sorting.Run(alg, input)
	if err != nil {
		return sorting.Result{}, false, fmt.Errorf("generate %s: %w", alg, err)
	}

	elapsed := time.Since(start)

	if s.cache != nil {
		s.cache.Put(key, res)
	}

	s.record(ctx, res, elapsed, false)

	return res, false, nil
}

func (s *Service) record(ctx context.Context, res sorting.Result, elapsed time.Duration, cached bool) {
	s.metrics.RecordRun(ctx, observability.GenerationStats{
		Algorithm: string(res.Algorithm),
		Snapshots: len(res.Trace),
		Duration:  elapsed,
		Cached:    cached,
	})

	s.logger.DebugContext(ctx, "trace generated",
		"snapshots", len(res.Trace),
		"comparisons", res.Counters.Comparisons,
		"exchanges", res.Counters.Exchanges,
		"cached", cached,
		"elapsed", elapsed,
	)
}
