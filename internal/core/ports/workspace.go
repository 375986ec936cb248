package ports

import "github.com/orca-repos/orca-sub012/internal/core/domain"

// WorkspaceLoader defines the interface for loading the workspace file.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type WorkspaceLoader interface {
	// Load reads the workspace from the given working directory.
	Load(cwd string) (*domain.Workspace, error)
	// DiscoverRoot walks up from cwd to find the directory containing orca.yaml.
	DiscoverRoot(cwd string) (string, error)
}
