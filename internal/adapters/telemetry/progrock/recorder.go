// Package progrock records build progress on a progrock tape.
package progrock

import (
	"strconv"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"github.com/vito/progrock"
)

var _ ports.Progress = (*Recorder)(nil)

// Recorder implements ports.Progress.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	seq atomic.Uint64
}

// New records onto a fresh in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder records onto w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{w: w, rec: progrock.NewRecorder(w)}
}

// Vertex starts a vertex. Repeated names get distinct vertices.
func (r *Recorder) Vertex(name string) ports.Vertex {
	d := digest.FromString(strconv.FormatUint(r.seq.Add(1), 10) + "/" + name)
	return &Vertex{v: r.rec.Vertex(d, name)}
}

// Close closes the underlying writer when it supports it.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
