package launcher

import (
	"context"
	"os"
	"runtime"

	"github.com/grindlemire/graft"
	"github.com/orca-repos/orca-sub012/internal/adapters/settings"
	"github.com/orca-repos/orca-sub012/internal/adapters/windebug"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// NodeID is the unique identifier for the launcher factory Graft node.
const NodeID graft.ID = "adapter.launcher"

// AskPassEnv names the variable holding the sudo password helper.
const AskPassEnv = "ORCA_ASKPASS"

func init() {
	graft.Register(graft.Node[ports.LauncherFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID, windebug.NodeID},
		Run: func(ctx context.Context) (ports.LauncherFactory, error) {
			s, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			mux, err := graft.Dep[*windebug.Multiplexer](ctx)
			if err != nil {
				return nil, err
			}

			opts := []Option{WithAskPass(os.Getenv(AskPassEnv))}
			if runtime.GOOS == "windows" {
				opts = append(opts, WithDebugOutput(mux))
			}
			return NewFactory(s.Run, opts...), nil
		},
	})
}
