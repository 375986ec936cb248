package telemetry

import (
	"context"
	"fmt"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	_ ports.Tracer = (*OTelTracer)(nil)
	_ ports.Span   = (*OTelSpan)(nil)
)

// OTelTracer implements ports.Tracer with OpenTelemetry. Output written to
// its spans is batched into the output sink, when one is set.
type OTelTracer struct {
	tracer trace.Tracer
	output ports.OutputSink
}

// NewOTelTracer creates a tracer from provider. A nil output keeps span
// output as span events only.
func NewOTelTracer(provider trace.TracerProvider, name string, output ports.OutputSink) *OTelTracer {
	return &OTelTracer{tracer: provider.Tracer(name), output: output}
}

// Start creates a new span carrying the configured attributes.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, span := t.tracer.Start(ctx, name)
	s := &OTelSpan{span: span}
	for k, v := range cfg.Attributes {
		s.SetAttribute(k, v)
	}
	if t.output != nil {
		out := t.output
		s.batcher = NewBatchProcessor(0, 0, func(data []byte) {
			out.Append(string(data), domain.LogMessageFormat)
		})
	}
	return ctx, s
}

// EmitPlan adds the planned unit names as an event of the current span.
func (t *OTelTracer) EmitPlan(ctx context.Context, names []string) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("plan_emitted", trace.WithAttributes(attribute.StringSlice("units", names)))
	}
}

// OTelSpan implements ports.Span.
type OTelSpan struct {
	span    trace.Span
	batcher *BatchProcessor
}

// End flushes pending output and completes the span.
func (s *OTelSpan) End() {
	if s.batcher != nil {
		_ = s.batcher.Close()
	}
	s.span.End()
}

// RecordError records err and marks the span failed.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	var kv attribute.KeyValue
	switch v := value.(type) {
	case string:
		kv = attribute.String(key, v)
	case int:
		kv = attribute.Int(key, v)
	case int64:
		kv = attribute.Int64(key, v)
	case float64:
		kv = attribute.Float64(key, v)
	case bool:
		kv = attribute.Bool(key, v)
	case []string:
		kv = attribute.StringSlice(key, v)
	default:
		kv = attribute.String(key, fmt.Sprint(v))
	}
	s.span.SetAttributes(kv)
}

// Write adds p to the span output.
func (s *OTelSpan) Write(p []byte) (int, error) {
	if s.batcher != nil {
		return s.batcher.Write(p)
	}
	s.span.AddEvent("log", trace.WithAttributes(attribute.String("message", string(p))))
	return len(p), nil
}
