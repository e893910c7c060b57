package main

import (
	"context"
	"log/slog"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// spanLogger is a span processor that logs each ended span.
type spanLogger struct {
	logger *slog.Logger
}

func newSpanLogger(logger *slog.Logger) sdktrace.SpanProcessor {
	return &spanLogger{logger: logger}
}

func (p *spanLogger) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (p *spanLogger) OnEnd(s sdktrace.ReadOnlySpan) {
	args := []any{
		"trace_id", s.SpanContext().TraceID().String(),
		"duration", s.EndTime().Sub(s.StartTime()),
		"status", s.Status().Code.String(),
	}
	for _, kv := range s.Attributes() {
		args = append(args, string(kv.Key), kv.Value.Emit())
	}
	p.logger.Info("span "+s.Name(), args...)
}

func (p *spanLogger) Shutdown(context.Context) error   { return nil }
func (p *spanLogger) ForceFlush(context.Context) error { return nil }
