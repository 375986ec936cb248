package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/orca-repos/orca-sub012/internal/adapters/logger"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// NodeID is the unique identifier for the workspace loader Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.WorkspaceLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkspaceLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
