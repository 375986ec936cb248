package ports

import (
	"context"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
)

//go:generate mockgen -source=extra_compiler.go -destination=mocks/mock_extra_compiler.go -package=mocks

// GeneratorRegistry resolves code generators by name.
type GeneratorRegistry interface {
	Generator(name string) (*domain.Generator, bool)
}

// ExtraCompiler runs a single-source code generator.
type ExtraCompiler interface {
	// Source returns the source file path.
	Source() string
	// Targets returns the declared output files.
	Targets() []string
	// Run reads the source file and regenerates the targets.
	Run(ctx context.Context) error
	// Content returns the last generated content of a target.
	Content(target string) ([]byte, bool)
}
