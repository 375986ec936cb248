package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/orca-repos/orca-sub012/internal/adapters/outputpane"
	"github.com/orca-repos/orca-sub012/internal/adapters/telemetry/progrock"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// TracerNodeID is the unique identifier for the tracer Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{progrock.NodeID, outputpane.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			progress, err := graft.Dep[ports.Progress](ctx)
			if err != nil {
				return nil, err
			}
			pane, err := graft.Dep[*outputpane.Pane](ctx)
			if err != nil {
				return nil, err
			}
			return NewOTelTracer(NewProvider(progress), InstrumentationName, pane), nil
		},
	})
}
