package app_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/orca-repos/orca-sub012/internal/adapters/device"
	"github.com/orca-repos/orca-sub012/internal/adapters/extracompiler"
	"github.com/orca-repos/orca-sub012/internal/adapters/outputpane"
	"github.com/orca-repos/orca-sub012/internal/adapters/prompt"
	"github.com/orca-repos/orca-sub012/internal/adapters/steps"
	"github.com/orca-repos/orca-sub012/internal/adapters/tasks"
	"github.com/orca-repos/orca-sub012/internal/adapters/telemetry"
	"github.com/orca-repos/orca-sub012/internal/app"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"github.com/orca-repos/orca-sub012/internal/core/ports/mocks"
	"github.com/orca-repos/orca-sub012/internal/engine/buildmanager"
	"github.com/orca-repos/orca-sub012/internal/engine/runcontrol"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
)

type appEnv struct {
	loader    *mocks.MockWorkspaceLoader
	logger    *mocks.MockLogger
	lists     *mocks.MockStepListFactory
	launchers *mocks.MockLauncherFactory
	watcher   *mocks.MockWatcher
	output    *syncBuffer
	hub       *tasks.Hub
}

// syncBuffer is a bytes.Buffer the output pane and the test may share.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func setupAppTest(t *testing.T, settings domain.BuildSettings) (*app.App, *appEnv) {
	t.Helper()
	ctrl := gomock.NewController(t)
	env := &appEnv{
		loader:    mocks.NewMockWorkspaceLoader(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		lists:     mocks.NewMockStepListFactory(ctrl),
		launchers: mocks.NewMockLauncherFactory(ctrl),
		watcher:   mocks.NewMockWatcher(ctrl),
		output:    &syncBuffer{},
		hub:       tasks.NewHub(),
	}
	env.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	env.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	pane := outputpane.New(env.output)
	prompter := prompt.NewWithReader(strings.NewReader(""), io.Discard)
	tracer := telemetry.NewOTelTracer(noop.NewTracerProvider(), "app_test", nil)

	a := app.New(app.Deps{
		Loader:    env.loader,
		Logger:    env.logger,
		Model:     steps.NewProjectModel(),
		Devices:   device.NewFactory(nil, env.launchers, time.Second),
		Builds:    buildmanager.NewFactory(settings, env.lists, pane, env.hub, prompter),
		Runs:      runcontrol.NewFactory(env.launchers, pane, tracer, domain.WorkerSettings{}),
		Compilers: extracompiler.NewFactory(env.launchers, env.hub, tracer, env.logger),
		Pane:      pane,
		Tasks:     env.hub,
		Prompter:  prompter,
		Watcher:   env.watcher,
	})
	return a, env
}

type fixture struct {
	ws        *domain.Workspace
	project   *domain.Project
	debug     *domain.ProjectConfiguration
	runConfig *domain.RunConfiguration
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	p := &domain.Project{Name: "app", Dir: "/ws/app"}
	target := &domain.Target{Name: "host", Project: p}
	debug := &domain.ProjectConfiguration{ID: "debug", DisplayName: "Debug", Target: target, BuildDir: "/ws/build"}
	runConfig := &domain.RunConfiguration{Name: "app", Target: target, Executable: "/ws/build/app"}
	target.BuildConfigurations = []*domain.ProjectConfiguration{debug}
	target.ActiveBuildConfiguration = debug
	target.RunConfigurations = []*domain.RunConfiguration{runConfig}
	target.ActiveRunConfiguration = runConfig
	p.Targets = []*domain.Target{target}
	p.ActiveTarget = target

	ws := domain.NewWorkspace("/ws")
	if err := ws.AddProject(p); err != nil {
		t.Fatalf("failed to add project: %v", err)
	}
	return &fixture{ws: ws, project: p, debug: debug, runConfig: runConfig}
}

// fakeStep runs instantly with the configured result.
type fakeStep struct {
	name   string
	cfg    *domain.ProjectConfiguration
	runErr error
}

func (s *fakeStep) DisplayName() string                         { return s.name }
func (s *fakeStep) Enabled() bool                               { return true }
func (s *fakeStep) Project() *domain.Project                    { return s.cfg.Target.Project }
func (s *fakeStep) Target() *domain.Target                      { return s.cfg.Target }
func (s *fakeStep) Configuration() *domain.ProjectConfiguration { return s.cfg }
func (s *fakeStep) BuildSystem() ports.BuildSystem              { return nil }
func (s *fakeStep) Init(ports.StepOutput) error                 { return nil }
func (s *fakeStep) Cancel()                                     {}

func (s *fakeStep) Run(_ context.Context, out ports.StepOutput) error {
	out.AddOutput("running "+s.name+"\n", domain.StdOutFormat)
	return s.runErr
}

func stepList(kind domain.StepListKind, steps ...ports.BuildStep) *ports.BuildStepList {
	return &ports.BuildStepList{Kind: kind, Steps: steps}
}
