package buildmanager_test

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/orca-repos/orca-sub012/internal/adapters/tasks"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"github.com/orca-repos/orca-sub012/internal/engine/buildmanager"
)

// runLog records the order in which steps ran and how many ran at once.
type runLog struct {
	mu          sync.Mutex
	order       []string
	inFlight    int
	maxInFlight int
}

func (l *runLog) start(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.order = append(l.order, name)
	l.inFlight++
	l.maxInFlight = max(l.maxInFlight, l.inFlight)
}

func (l *runLog) end() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inFlight--
}

func (l *runLog) MaxInFlight() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.maxInFlight
}

func (l *runLog) Order() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.order...)
}

type fakeStep struct {
	name    string
	enabled atomic.Bool
	cfg     *domain.ProjectConfiguration
	system  ports.BuildSystem
	log     *runLog

	initErr error
	runErr  error
	// release, when set, keeps Run blocked until it is closed or the step is canceled.
	release chan struct{}

	cancelOnce sync.Once
	canceled   chan struct{}
	inits      atomic.Int32
}

func newFakeStep(name string, cfg *domain.ProjectConfiguration, log *runLog) *fakeStep {
	s := &fakeStep{name: name, cfg: cfg, log: log, canceled: make(chan struct{})}
	s.enabled.Store(true)
	return s
}

func (s *fakeStep) DisplayName() string                         { return s.name }
func (s *fakeStep) Enabled() bool                               { return s.enabled.Load() }
func (s *fakeStep) Project() *domain.Project                    { return s.cfg.Target.Project }
func (s *fakeStep) Target() *domain.Target                      { return s.cfg.Target }
func (s *fakeStep) Configuration() *domain.ProjectConfiguration { return s.cfg }
func (s *fakeStep) BuildSystem() ports.BuildSystem              { return s.system }

func (s *fakeStep) Init(out ports.StepOutput) error {
	s.inits.Add(1)
	out.AddOutput("init "+s.name+"\n", domain.StdOutFormat)
	return s.initErr
}

func (s *fakeStep) Run(ctx context.Context, out ports.StepOutput) error {
	s.log.start(s.name)
	defer s.log.end()
	out.AddOutput("run "+s.name+"\n", domain.StdOutFormat)
	if s.release != nil {
		select {
		case <-s.release:
		case <-s.canceled:
			return context.Canceled
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.runErr
}

func (s *fakeStep) Cancel() {
	s.cancelOnce.Do(func() { close(s.canceled) })
}

func (s *fakeStep) wasCanceled() bool {
	select {
	case <-s.canceled:
		return true
	default:
		return false
	}
}

type recordingSink struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingSink) Append(text string, _ domain.OutputFormat) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, text)
}

func (r *recordingSink) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.lines, "")
}

type progressPoint struct {
	progress, maximum int
	text              string
}

type recordingObserver struct {
	mu       sync.Mutex
	finished []bool
	changed  []*domain.Project
	progress []progressPoint
}

func (o *recordingObserver) BuildStateChanged(p *domain.Project) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.changed = append(o.changed, p)
}

func (o *recordingObserver) BuildQueueFinished(success bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.finished = append(o.finished, success)
}

func (o *recordingObserver) ProgressChanged(progress, maximum int, text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progress = append(o.progress, progressPoint{progress, maximum, text})
}

func (o *recordingObserver) Finished() []bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]bool(nil), o.finished...)
}

func (o *recordingObserver) Changed() []*domain.Project {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]*domain.Project(nil), o.changed...)
}

func (o *recordingObserver) Progress() []progressPoint {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]progressPoint(nil), o.progress...)
}

// fixture is a project with one target and one build configuration.
type fixture struct {
	project *domain.Project
	target  *domain.Target
	build   *domain.ProjectConfiguration
	deploy  *domain.ProjectConfiguration
}

func newFixture(name string) *fixture {
	p := &domain.Project{Name: name, Dir: "/src/" + name}
	t := &domain.Target{Name: name + "-kit", Project: p, Kit: &domain.Kit{Name: "Desktop"}}
	build := &domain.ProjectConfiguration{ID: "debug", Kind: domain.BuildConfigurationKind, Target: t, BuildDir: "/build/" + name}
	deploy := &domain.ProjectConfiguration{ID: "deploy", Kind: domain.DeployConfigurationKind, Target: t}
	t.BuildConfigurations = []*domain.ProjectConfiguration{build}
	t.ActiveBuildConfiguration = build
	t.ActiveDeployConfiguration = deploy
	p.Targets = []*domain.Target{t}
	p.ActiveTarget = t
	return &fixture{project: p, target: t, build: build, deploy: deploy}
}

type managerEnv struct {
	output   *recordingSink
	hub      *tasks.Hub
	observer *recordingObserver
	log      *runLog
}

// startManager runs m until the test ends. It must be called inside the test's bubble.
func startManager(t *testing.T, m *buildmanager.Manager) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = m.Run(ctx) }()
	t.Cleanup(cancel)
}

func stepList(kind domain.StepListKind, steps ...ports.BuildStep) *ports.BuildStepList {
	return &ports.BuildStepList{Kind: kind, Steps: steps}
}
