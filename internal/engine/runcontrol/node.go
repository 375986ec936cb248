package runcontrol

import (
	"context"
	"strconv"

	"github.com/grindlemire/graft"
	"github.com/orca-repos/orca-sub012/internal/adapters/launcher"
	"github.com/orca-repos/orca-sub012/internal/adapters/outputpane"
	"github.com/orca-repos/orca-sub012/internal/adapters/settings"
	"github.com/orca-repos/orca-sub012/internal/adapters/telemetry"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

// NodeID is the unique identifier for the run control factory Graft node.
const NodeID graft.ID = "engine.runcontrol"

// ChannelEnvPrefix prefixes the environment variables that pass debug
// channel URLs to the application, followed by the channel index.
const ChannelEnvPrefix = "ORCA_DEBUG_CHANNEL_"

// Factory creates run controls for run configurations and keeps them in its
// registry.
type Factory struct {
	launchers ports.LauncherFactory
	output    ports.OutputSink
	tracer    ports.Tracer
	watchdogs domain.WorkerSettings
	registry  *Registry
}

// NewFactory creates a Factory.
func NewFactory(
	launchers ports.LauncherFactory,
	output ports.OutputSink,
	tracer ports.Tracer,
	watchdogs domain.WorkerSettings,
) *Factory {
	return &Factory{
		launchers: launchers,
		output:    output,
		tracer:    tracer,
		watchdogs: watchdogs,
		registry:  NewRegistry(),
	}
}

// Registry returns the live controls created by f.
func (f *Factory) Registry() *Registry { return f.registry }

// ForRunConfiguration builds the worker graph for runConfig on device: the
// application runner and, for remote devices asking for debug channels, a
// channel provider the runner waits for.
func (f *Factory) ForRunConfiguration(runConfig *domain.RunConfiguration, device ports.Device) (*RunControl, error) {
	rc := New(runConfig, device, f.output, WithTracer(f.tracer), WithWatchdogs(f.watchdogs))

	var provider *ChannelProvider
	runner := rc.AddTargetRunner(f.launchers, WithPrepare(func(r domain.Runnable) domain.Runnable {
		if provider == nil {
			return r
		}
		env := make(map[string]string, provider.Count())
		for i := range provider.Count() {
			if u := provider.Channel(i); u != nil {
				env[ChannelEnvPrefix+strconv.Itoa(i)] = u.String()
			}
		}
		return r.WithEnvironment(env)
	}))

	if runConfig.Channels > 0 && !rc.IsDesktop() {
		pw, p, err := rc.AddChannelProvider(runConfig.Channels)
		if err != nil {
			return nil, err
		}
		if err := runner.AddStartDependency(pw); err != nil {
			return nil, err
		}
		provider = p
	}

	f.registry.Add(rc)
	return rc, nil
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{launcher.NodeID, outputpane.NodeID, telemetry.TracerNodeID, settings.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			launchers, err := graft.Dep[ports.LauncherFactory](ctx)
			if err != nil {
				return nil, err
			}
			pane, err := graft.Dep[*outputpane.Pane](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			s, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(launchers, pane, tracer, s.Worker), nil
		},
	})
}
