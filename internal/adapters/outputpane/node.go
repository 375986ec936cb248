package outputpane

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the output pane Graft node.
const NodeID graft.ID = "adapter.outputpane"

func init() {
	graft.Register(graft.Node[*Pane]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Pane, error) {
			return New(os.Stdout), nil
		},
	})
}
