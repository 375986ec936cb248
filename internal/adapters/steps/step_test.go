package steps_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/orca-repos/orca-sub012/internal/adapters/launcher"
	"github.com/orca-repos/orca-sub012/internal/adapters/steps"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordedOutput struct {
	mu    sync.Mutex
	text  []string
	tasks []domain.Task
}

func (r *recordedOutput) AddOutput(text string, _ domain.OutputFormat) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.text = append(r.text, text)
}

func (r *recordedOutput) AddTask(task domain.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, task)
}

func (r *recordedOutput) Tasks() []domain.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Task(nil), r.tasks...)
}

type stepMocks struct {
	device   *mocks.MockDevice
	progress *mocks.MockProgress
	vertex   *mocks.MockVertex
	cfg      *domain.ProjectConfiguration
	dir      string
}

func setupStepsTest(t *testing.T) (*steps.Factory, *stepMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &stepMocks{
		device:   mocks.NewMockDevice(ctrl),
		progress: mocks.NewMockProgress(ctrl),
		vertex:   mocks.NewMockVertex(ctrl),
		dir:      t.TempDir(),
	}
	m.device.EXPECT().Type().Return(domain.DesktopDevice).AnyTimes()
	m.progress.EXPECT().Vertex(gomock.Any()).Return(m.vertex).AnyTimes()
	m.vertex.EXPECT().Stdout().Return(io.Discard).AnyTimes()
	m.vertex.EXPECT().Stderr().Return(io.Discard).AnyTimes()
	m.vertex.EXPECT().Done(gomock.Any()).AnyTimes()

	project := &domain.Project{Name: "app", Dir: m.dir}
	target := &domain.Target{Name: "host", Project: project}
	m.cfg = &domain.ProjectConfiguration{
		ID:       "debug",
		Target:   target,
		BuildDir: filepath.Join(m.dir, "build"),
		Steps:    map[domain.StepListKind][]domain.StepSpec{},
	}

	launchers := launcher.NewFactory(domain.RunSettings{}).Separated()
	return steps.NewFactory(launchers, m.device, m.progress, steps.NewProjectModel()), m
}

func shellStep(name, script string) domain.StepSpec {
	return domain.StepSpec{Name: name, Command: "sh", Arguments: []string{"-c", script}, Enabled: true, Parser: "gcc"}
}

func TestProcessStep_RunParsesDiagnostics(t *testing.T) {
	f, m := setupStepsTest(t)
	m.cfg.Steps[domain.StepListBuild] = []domain.StepSpec{
		shellStep("make", `echo building > out.txt; echo "main.c:7:1: warning: implicit declaration" >&2`),
	}

	list := f.StepList(m.cfg, domain.StepListBuild)
	require.Len(t, list.Steps, 1)
	step := list.Steps[0]
	assert.Equal(t, "make", step.DisplayName())
	assert.Equal(t, "app", step.Project().Name)

	out := &recordedOutput{}
	require.NoError(t, step.Init(out))
	require.NoError(t, step.Run(context.Background(), out))

	data, err := os.ReadFile(filepath.Join(m.cfg.BuildDir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "building\n", string(data))

	tasks := out.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.SeverityWarning, tasks[0].Severity)
	assert.Equal(t, "main.c", tasks[0].File)
	assert.Contains(t, out.text, "The process \"sh\" exited normally.\n")
}

func TestProcessStep_NonZeroExit(t *testing.T) {
	f, m := setupStepsTest(t)
	m.cfg.Steps[domain.StepListBuild] = []domain.StepSpec{shellStep("fail", "exit 3")}

	step := f.StepList(m.cfg, domain.StepListBuild).Steps[0]
	out := &recordedOutput{}
	require.NoError(t, step.Init(out))

	err := step.Run(context.Background(), out)
	require.ErrorContains(t, err, domain.ErrProcessExitCode.Error())
	assert.Contains(t, out.text, "The process \"sh\" exited with code 3.\n")
}

func TestProcessStep_InitWithoutCommand(t *testing.T) {
	f, m := setupStepsTest(t)
	m.cfg.Steps[domain.StepListDeploy] = []domain.StepSpec{{Name: "empty", Enabled: true}}

	step := f.StepList(m.cfg, domain.StepListDeploy).Steps[0]
	out := &recordedOutput{}
	err := step.Init(out)
	require.ErrorContains(t, err, domain.ErrNoExecutable.Error())
	assert.Equal(t, []string{"No executable specified.\n"}, out.text)
}

func TestProcessStep_Cancel(t *testing.T) {
	f, m := setupStepsTest(t)
	m.cfg.Steps[domain.StepListBuild] = []domain.StepSpec{shellStep("sleep", "sleep 30")}

	step := f.StepList(m.cfg, domain.StepListBuild).Steps[0]
	out := &recordedOutput{}
	require.NoError(t, step.Init(out))

	errCh := make(chan error, 1)
	go func() { errCh <- step.Run(context.Background(), out) }()

	require.Eventually(t, func() bool {
		step.Cancel()
		select {
		case err := <-errCh:
			errCh <- err
			return true
		default:
			return false
		}
	}, 10*time.Second, 50*time.Millisecond)
	assert.Error(t, <-errCh)
}

func TestProcessStep_ContextCancel(t *testing.T) {
	f, m := setupStepsTest(t)
	m.cfg.Steps[domain.StepListBuild] = []domain.StepSpec{shellStep("sleep", "sleep 30")}

	step := f.StepList(m.cfg, domain.StepListBuild).Steps[0]
	out := &recordedOutput{}
	require.NoError(t, step.Init(out))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, step.Run(ctx, out), context.DeadlineExceeded)
}

func TestFactory_CachesStepLists(t *testing.T) {
	f, m := setupStepsTest(t)
	m.cfg.Steps[domain.StepListClean] = []domain.StepSpec{shellStep("clean", "true")}

	first := f.StepList(m.cfg, domain.StepListClean)
	second := f.StepList(m.cfg, domain.StepListClean)
	assert.Same(t, first, second)
	assert.Same(t, first.Steps[0], second.Steps[0])
	assert.Equal(t, domain.StepListClean, first.Kind)

	assert.Nil(t, f.StepList(m.cfg, domain.StepListDeploy))
	assert.Same(t, f.Model(), first.Steps[0].BuildSystem())
}
