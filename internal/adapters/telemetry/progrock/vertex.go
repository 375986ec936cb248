package progrock

import (
	"io"

	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"github.com/vito/progrock"
)

var _ ports.Vertex = (*Vertex)(nil)

// Vertex wraps a progrock vertex recorder.
type Vertex struct {
	v *progrock.VertexRecorder
}

func (v *Vertex) Stdout() io.Writer { return v.v.Stdout() }

func (v *Vertex) Stderr() io.Writer { return v.v.Stderr() }

// Done completes the vertex, failed when err is not nil.
func (v *Vertex) Done(err error) { v.v.Done(err) }
