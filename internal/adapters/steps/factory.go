package steps

import (
	"sync"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

var _ ports.StepListFactory = (*Factory)(nil)

type listKey struct {
	cfg  *domain.ProjectConfiguration
	kind domain.StepListKind
}

// Factory builds the step lists of configurations and caches them so that
// the build manager can match queued steps by identity.
type Factory struct {
	launchers ports.LauncherFactory
	device    ports.Device
	progress  ports.Progress
	model     *ProjectModel

	mu    sync.Mutex
	lists map[listKey]*ports.BuildStepList
}

// NewFactory creates a factory running every step on device.
func NewFactory(launchers ports.LauncherFactory, device ports.Device, progress ports.Progress, model *ProjectModel) *Factory {
	return &Factory{
		launchers: launchers,
		device:    device,
		progress:  progress,
		model:     model,
		lists:     make(map[listKey]*ports.BuildStepList),
	}
}

// Model returns the project model shared by all steps.
func (f *Factory) Model() *ProjectModel {
	return f.model
}

// StepList implements ports.StepListFactory.
func (f *Factory) StepList(cfg *domain.ProjectConfiguration, kind domain.StepListKind) *ports.BuildStepList {
	specs := cfg.StepSpecs(kind)
	if len(specs) == 0 {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	key := listKey{cfg: cfg, kind: kind}
	if list, ok := f.lists[key]; ok {
		return list
	}

	list := &ports.BuildStepList{Kind: kind, Steps: make([]ports.BuildStep, 0, len(specs))}
	for _, spec := range specs {
		list.Steps = append(list.Steps, NewProcessStep(spec, kind, cfg, f.model, f.launchers, f.device, f.progress))
	}
	f.lists[key] = list
	return list
}
