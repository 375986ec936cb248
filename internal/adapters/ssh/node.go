package ssh

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/orca-repos/orca-sub012/internal/adapters/logger"
	"github.com/orca-repos/orca-sub012/internal/adapters/settings"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// NodeID is the unique identifier for the connection pool Graft node.
const NodeID graft.ID = "adapter.ssh"

func init() {
	graft.Register(graft.Node[*Pool]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, settings.NodeID},
		Run: func(ctx context.Context) (*Pool, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			s, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewPool(log, s.SSH.SharingTimeout)
		},
	})
}
