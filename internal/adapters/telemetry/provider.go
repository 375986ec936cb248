package telemetry

import (
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// InstrumentationName names the tracer of the orchestrator.
const InstrumentationName = "orca"

// NewProvider creates a tracer provider whose spans become vertices of
// progress, and installs it as the global provider.
func NewProvider(progress ports.Progress) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewBridge(progress)))
	otel.SetTracerProvider(tp)
	return tp
}
