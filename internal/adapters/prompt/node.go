package prompt

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the prompter Graft node.
const NodeID graft.ID = "adapter.prompt"

func init() {
	graft.Register(graft.Node[*Prompter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Prompter, error) {
			return New(os.Stdin, os.Stderr), nil
		},
	})
}
