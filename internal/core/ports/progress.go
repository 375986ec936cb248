package ports

import "io"

//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks

// Progress records the execution of build steps.
type Progress interface {
	// Vertex starts recording a unit of work with the given display name.
	Vertex(name string) Vertex
	// Close flushes and stops recording.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Stdout receives the regular output of the unit.
	Stdout() io.Writer
	// Stderr receives the error output of the unit.
	Stderr() io.Writer
	// Done completes the vertex. A nil error marks success.
	Done(err error)
}
