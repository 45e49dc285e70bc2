package observability

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

const (
	attrTraceID = "trace_id"
	attrSpanID  = "span_id"
	attrService = "service"
	attrEnv     = "env"
	attrMode    = "mode"
	attrInput   = "input_size"
)

type runKey struct{}

// run is the generation request a context is serving.
type run struct {
	algorithm string
	inputSize int
}

// WithRun tags ctx with the algorithm and input length being traced. Every
// record logged under the returned context carries both.
func WithRun(ctx context.Context, algorithm string, inputSize int) context.Context {
	return context.WithValue(ctx, runKey{}, run{algorithm: algorithm, inputSize: inputSize})
}

// RunFromContext returns the algorithm and input length set by WithRun.
func RunFromContext(ctx context.Context) (algorithm string, inputSize int, ok bool) {
	r, ok := ctx.Value(runKey{}).(run)

	return r.algorithm, r.inputSize, ok
}

// TracingHandler is an [slog.Handler] that stamps records with the active
// span and, inside a generation, the algorithm and input size. service, mode
// and env are attached once at construction so groups never nest them.
type TracingHandler struct {
	inner slog.Handler
}

// NewTracingHandler wraps inner with span, run and service metadata.
func NewTracingHandler(inner slog.Handler, service, env string, appMode AppMode) *TracingHandler {
	static := []slog.Attr{
		slog.String(attrService, service),
		slog.String(attrMode, string(appMode)),
	}

	if env != "" {
		static = append(static, slog.String(attrEnv, env))
	}

	return &TracingHandler{inner: inner.WithAttrs(static)}
}

// Enabled delegates to the inner handler.
func (th *TracingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return th.inner.Enabled(ctx, level)
}

// Handle adds context attributes, then delegates.
func (th *TracingHandler) Handle(ctx context.Context, record slog.Record) error {
	record.AddAttrs(contextAttrs(ctx)...)

	err := th.inner.Handle(ctx, record)
	if err != nil {
		return fmt.Errorf("log %q: %w", record.Message, err)
	}

	return nil
}

// WithAttrs implements [slog.Handler].
func (th *TracingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TracingHandler{inner: th.inner.WithAttrs(attrs)}
}

// WithGroup implements [slog.Handler].
func (th *TracingHandler) WithGroup(name string) slog.Handler {
	return &TracingHandler{inner: th.inner.WithGroup(name)}
}

func contextAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		attrs = append(attrs,
			slog.String(attrTraceID, sc.TraceID().String()),
			slog.String(attrSpanID, sc.SpanID().String()),
		)
	}

	if alg, size, ok := RunFromContext(ctx); ok {
		attrs = append(attrs,
			slog.String(attrAlgorithm, alg),
			slog.Int(attrInput, size),
		)
	}

	return attrs
}
