// Package buildmanager queues build, clean and deploy step lists and runs
// their steps strictly one after another.
package buildmanager

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/edwingeng/deque"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"github.com/orca-repos/orca-sub012/internal/ui/style"
	"github.com/tevino/abool/v2"
)

// entry is one queued step. The enabled flag is frozen when the step is queued.
type entry struct {
	step    ports.BuildStep
	name    string
	enabled bool
	out     *forwarder
}

type event struct {
	fn   func()
	done chan struct{}
}

// Manager is the build queue. All state transitions happen on the goroutine
// running Run; steps run on their own goroutine and post their completion
// back to it. Queries may be made from any goroutine.
type Manager struct {
	settings  domain.BuildSettings
	workspace *domain.Workspace
	lists     ports.StepListFactory
	output    ports.OutputSink
	tasks     ports.TaskSink
	runs      ports.RunControlRegistry
	prompter  ports.StopPrompter
	now       func() time.Time

	events chan event
	done   chan struct{}
	ctx    context.Context

	canceling *abool.AtomicBool

	mu              sync.Mutex
	queue           deque.Deque
	current         *entry
	observers       []ports.BuildObserver
	pending         []func()
	progress        int
	maxProgress     int
	running         bool
	deploying       bool
	skipDisabled    bool
	allSucceeded    bool
	previousProject *domain.Project
	started         time.Time
	scheduledID     int
	scheduled       func()

	activeProjects map[*domain.Project]int
	activeTargets  map[*domain.Target]int
	activeConfigs  map[*domain.ProjectConfiguration]int
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces the clock used for timestamps and the elapsed time.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithStopPrompter sets the prompt used before stopping running applications.
// Without one, applications are stopped without asking.
func WithStopPrompter(p ports.StopPrompter) Option {
	return func(m *Manager) { m.prompter = p }
}

// WithRunControls sets the registry consulted by the stop-before-build policy.
func WithRunControls(r ports.RunControlRegistry) Option {
	return func(m *Manager) { m.runs = r }
}

// New creates a Manager. Run must be active for the queue to make progress.
func New(
	settings domain.BuildSettings,
	workspace *domain.Workspace,
	lists ports.StepListFactory,
	output ports.OutputSink,
	tasks ports.TaskSink,
	opts ...Option,
) *Manager {
	m := &Manager{
		settings:       settings,
		workspace:      workspace,
		lists:          lists,
		output:         output,
		tasks:          tasks,
		now:            time.Now,
		events:         make(chan event),
		done:           make(chan struct{}),
		ctx:            context.Background(),
		canceling:      abool.New(),
		queue:          deque.NewDeque(),
		activeProjects: make(map[*domain.Project]int),
		activeTargets:  make(map[*domain.Target]int),
		activeConfigs:  make(map[*domain.ProjectConfiguration]int),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run processes queue events until ctx is done. Steps are run with ctx.
func (m *Manager) Run(ctx context.Context) error {
	m.ctx = ctx
	defer close(m.done)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-m.events:
			m.mu.Lock()
			ev.fn()
			notes := m.pending
			m.pending = nil
			m.mu.Unlock()

			for _, n := range notes {
				n()
			}
			if ev.done != nil {
				close(ev.done)
			}
		}
	}
}

// do runs fn on the event loop and waits until it and the notifications it
// caused have been processed. It reports false if the loop is gone.
func (m *Manager) do(ctx context.Context, fn func()) bool {
	ev := event{fn: fn, done: make(chan struct{})}
	select {
	case m.events <- ev:
	case <-m.done:
		return false
	case <-ctx.Done():
		return false
	}
	<-ev.done
	return true
}

// post hands fn to the event loop without waiting for it.
func (m *Manager) post(fn func()) {
	select {
	case m.events <- event{fn: fn}:
	case <-m.done:
	}
}

// AddObserver registers o. Observers are called from the event loop and may
// use the query methods, but must not queue or cancel builds.
func (m *Manager) AddObserver(o ports.BuildObserver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, o)
}

func (m *Manager) notify(fn func(o ports.BuildObserver)) {
	observers := append([]ports.BuildObserver(nil), m.observers...)
	m.pending = append(m.pending, func() {
		for _, o := range observers {
			fn(o)
		}
	})
}

// stamp prefixes orchestrator messages with the time of day.
func (m *Manager) stamp(format domain.OutputFormat) string {
	if !format.IsMessage() {
		return ""
	}
	return m.now().Format(style.Timestamp) + ": "
}

// message writes a line of the manager itself.
func (m *Manager) message(text string, format domain.OutputFormat) {
	m.output.Append(m.stamp(format)+text+"\n", format)
}

func (m *Manager) setProgressText(text string) {
	progress, maximum := m.progress, m.maxProgress
	m.notify(func(o ports.BuildObserver) { o.ProgressChanged(progress, maximum, text) })
}

func msgProgress(progress, total int) string {
	if total == 1 {
		return fmt.Sprintf("Finished %d of %d step", progress, total)
	}
	return fmt.Sprintf("Finished %d of %d steps", progress, total)
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	mins := int(d/time.Minute) % 60
	secs := int(d/time.Second) % 60
	if h > 0 {
		return fmt.Sprintf("Elapsed time: %d:%02d:%02d.", h, mins, secs)
	}
	return fmt.Sprintf("Elapsed time: %02d:%02d.", mins, secs)
}

// IsBuilding reports whether steps are queued or running.
func (m *Manager) IsBuilding() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queue.Len() > 0 || m.running
}

// IsDeploying reports whether a deploy list is part of the current queue.
func (m *Manager) IsDeploying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deploying
}

// IsBuildingProject reports whether steps of p are queued or running.
func (m *Manager) IsBuildingProject(p *domain.Project) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeProjects[p] > 0
}

// IsBuildingTarget reports whether steps of t are queued or running.
func (m *Manager) IsBuildingTarget(t *domain.Target) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeTargets[t] > 0
}

// IsBuildingConfiguration reports whether steps of c are queued or running.
func (m *Manager) IsBuildingConfiguration(c *domain.ProjectConfiguration) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeConfigs[c] > 0
}

// IsBuildingStep reports whether step is running or queued.
func (m *Manager) IsBuildingStep(step ports.BuildStep) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil && m.current.step == step {
		return true
	}
	for i := range m.queue.Len() {
		if m.queue.Peek(i).(*entry).step == step {
			return true
		}
	}
	return false
}

// Progress returns the number of finished steps and the number of enabled steps queued.
func (m *Manager) Progress() (progress, maximum int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.progress, m.maxProgress
}

// ErrorTaskCount counts the error tasks produced by builds and deployments.
func (m *Manager) ErrorTaskCount() int {
	return m.tasks.ErrorTaskCount(domain.ErrorCountCategories...)
}

// TasksAvailable reports whether builds or deployments produced any task.
func (m *Manager) TasksAvailable() bool {
	return m.tasks.TaskCount(domain.ErrorCountCategories...) > 0
}

func (m *Manager) increment(step ports.BuildStep) {
	m.activeConfigs[step.Configuration()]++
	m.activeTargets[step.Target()]++
	p := step.Project()
	m.activeProjects[p]++
	if m.activeProjects[p] == 1 {
		m.notify(func(o ports.BuildObserver) { o.BuildStateChanged(p) })
	}
}

func (m *Manager) decrement(step ports.BuildStep) {
	decrementKey(m.activeConfigs, step.Configuration())
	decrementKey(m.activeTargets, step.Target())
	p := step.Project()
	if decrementKey(m.activeProjects, p) {
		m.notify(func(o ports.BuildObserver) { o.BuildStateChanged(p) })
	}
}

// decrementKey lowers the count of key and reports whether it reached zero.
func decrementKey[K comparable](counts map[K]int, key K) bool {
	n, ok := counts[key]
	if !ok || n == 0 {
		return false
	}
	if n == 1 {
		delete(counts, key)
		return true
	}
	counts[key] = n - 1
	return false
}
