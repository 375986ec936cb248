package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// NodeID is the unique identifier for the progress recorder Graft node.
const NodeID graft.ID = "adapter.progress"

func init() {
	graft.Register(graft.Node[ports.Progress]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Progress, error) {
			return New(), nil
		},
	})
}
