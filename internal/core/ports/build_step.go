package ports

import (
	"context"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
)

//go:generate mockgen -source=build_step.go -destination=mocks/mock_build_step.go -package=mocks

// BuildStep is one unit of build, clean or deploy work.
// The build manager orders and invokes steps but never owns them.
type BuildStep interface {
	// DisplayName is the name shown in progress and error messages.
	DisplayName() string
	// Enabled reports whether the step should run.
	Enabled() bool
	// Project returns the owning project.
	Project() *domain.Project
	// Target returns the owning target.
	Target() *domain.Target
	// Configuration returns the owning build or deploy configuration.
	Configuration() *domain.ProjectConfiguration
	// BuildSystem returns the build system of the step, or nil.
	BuildSystem() BuildSystem
	// Init prepares the step before it is queued. Output written here is forwarded.
	Init(out StepOutput) error
	// Run executes the step and blocks until it finishes.
	Run(ctx context.Context, out StepOutput) error
	// Cancel asks a running step to stop. Run is still expected to return.
	Cancel()
}

// StepOutput is the forwarding channel of a queued step.
type StepOutput interface {
	// AddOutput writes text to the output window.
	AddOutput(text string, format domain.OutputFormat)
	// AddTask records a diagnostic.
	AddTask(task domain.Task)
}

// BuildSystem is the project model component that may be busy re-parsing.
type BuildSystem interface {
	// IsParsing reports whether the project model is being refreshed.
	IsParsing() bool
	// OnParsingFinished registers a one-shot callback for the end of the current parse.
	// The returned function removes the callback if it has not fired yet.
	OnParsingFinished(fn func(success bool)) (cancel func())
}

// BuildStepList is the ordered step list of one configuration.
type BuildStepList struct {
	Kind  domain.StepListKind
	Steps []BuildStep
}

// IsEmpty reports whether the list holds no steps.
func (l *BuildStepList) IsEmpty() bool {
	return l == nil || len(l.Steps) == 0
}

// StepListFactory turns configurations into step lists.
type StepListFactory interface {
	// StepList returns the steps of the given kind, or nil when the configuration has none.
	// Repeated calls for the same configuration return the same step instances.
	StepList(cfg *domain.ProjectConfiguration, kind domain.StepListKind) *BuildStepList
}

// BuildObserver is notified about build manager state changes.
// Calls are made from the build manager's event loop and must not block.
type BuildObserver interface {
	// BuildStateChanged fires when a project starts or stops having active steps.
	BuildStateChanged(project *domain.Project)
	// BuildQueueFinished fires once per queue run.
	BuildQueueFinished(success bool)
	// ProgressChanged reports the progress value, its maximum and a status text.
	ProgressChanged(progress, maximum int, text string)
}
