package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vroute/pkg/router"
)

const (
	defaultTracerName = "vroute"

	// SpanName is the name of navigation spans.
	SpanName = "router.navigate"
)

// TracerConfig configures the tracing observer.
type TracerConfig struct {
	// TracerName is the instrumentation name (default: "vroute").
	TracerName string

	// Provider supplies the tracer. Default: the global provider.
	Provider trace.TracerProvider

	// Context is the parent context of every span.
	// Default: context.Background()
	Context context.Context
}

// TracerOption configures the tracing observer.
type TracerOption func(*TracerConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracerOption {
	return func(c *TracerConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracerOption {
	return func(c *TracerConfig) {
		c.Provider = tp
	}
}

// WithContext sets the parent context of navigation spans.
func WithContext(ctx context.Context) TracerOption {
	return func(c *TracerConfig) {
		c.Context = ctx
	}
}

// TracerObserver emits one span per navigation.
type TracerObserver struct {
	tracer trace.Tracer
	ctx    context.Context
}

var _ router.Observer = (*TracerObserver)(nil)

// Tracer creates a tracing observer. Spans carry the from/to keys, the
// source and the match kind; a navigation that resolves to no component
// is marked as an error.
func Tracer(opts ...TracerOption) *TracerObserver {
	config := TracerConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	if config.Provider == nil {
		config.Provider = otel.GetTracerProvider()
	}
	if config.Context == nil {
		config.Context = context.Background()
	}
	return &TracerObserver{
		tracer: config.Provider.Tracer(config.TracerName),
		ctx:    config.Context,
	}
}

// Navigated implements router.Observer.
func (t *TracerObserver) Navigated(ev router.NavigationEvent) {
	_, span := t.tracer.Start(t.ctx, SpanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithTimestamp(ev.Start),
		trace.WithAttributes(
			attribute.String("router.from", ev.From),
			attribute.String("router.to", ev.To),
			attribute.String("router.source", string(ev.Source)),
			attribute.String("router.match", ev.Match.String()),
		),
	)

	if ev.Match == router.MatchNone {
		span.SetStatus(codes.Error, "no route for "+ev.To)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End(trace.WithTimestamp(ev.End))
}
