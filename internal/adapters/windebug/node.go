package windebug

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the debug output multiplexer Graft node.
const NodeID graft.ID = "adapter.windebug"

func init() {
	graft.Register(graft.Node[*Multiplexer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Multiplexer, error) {
			return NewMultiplexer(), nil
		},
	})
}
