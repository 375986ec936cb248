package telemetry

import (
	"context"
	"sync"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/zerr"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge records every span as a progress vertex.
type Bridge struct {
	progress ports.Progress

	mu       sync.Mutex
	vertices map[string]ports.Vertex
}

// NewBridge returns a Bridge feeding progress.
func NewBridge(progress ports.Progress) *Bridge {
	return &Bridge{progress: progress, vertices: make(map[string]ports.Vertex)}
}

// OnStart opens the vertex of s.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	sc := s.SpanContext()
	if b.progress == nil || !sc.IsValid() {
		return
	}
	v := b.progress.Vertex(s.Name())
	b.mu.Lock()
	b.vertices[sc.SpanID().String()] = v
	b.mu.Unlock()
}

// OnEnd completes the vertex of s, failed when the span has an error status.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	id := s.SpanContext().SpanID().String()
	b.mu.Lock()
	v, ok := b.vertices[id]
	delete(b.vertices, id)
	b.mu.Unlock()
	if !ok {
		return
	}

	var err error
	if st := s.Status(); st.Code == codes.Error {
		err = zerr.With(zerr.With(domain.ErrSpanFailed, "span", s.Name()), "status", st.Description)
	}
	v.Done(err)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(context.Context) error { return nil }

// Shutdown does nothing.
func (b *Bridge) Shutdown(context.Context) error { return nil }
