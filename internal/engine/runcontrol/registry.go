package runcontrol

import (
	"slices"
	"sync"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

var _ ports.RunControlRegistry = (*Registry)(nil)

// Registry tracks the live run controls. A control leaves the registry when
// it finishes.
type Registry struct {
	mu       sync.Mutex
	controls []*RunControl
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers rc until it is finished.
func (r *Registry) Add(rc *RunControl) {
	r.mu.Lock()
	r.controls = append(r.controls, rc)
	r.mu.Unlock()

	rc.OnStateChanged(func(s domain.RunControlState) {
		if s == domain.RunControlFinished {
			r.remove(rc)
		}
	})
}

func (r *Registry) remove(rc *RunControl) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.controls = slices.DeleteFunc(r.controls, func(c *RunControl) bool { return c == rc })
}

// Controls returns all registered controls.
func (r *Registry) Controls() []*RunControl {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.controls)
}

// RunningApplications returns the controls that are starting or running.
func (r *Registry) RunningApplications() []ports.RunningApplication {
	var out []ports.RunningApplication
	for _, rc := range r.Controls() {
		switch rc.State() {
		case domain.RunControlStarting, domain.RunControlRunning:
			out = append(out, rc)
		}
	}
	return out
}
