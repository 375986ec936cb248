package buildmanager_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/orca-repos/orca-sub012/internal/adapters/steps"
	"github.com/orca-repos/orca-sub012/internal/adapters/tasks"
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"github.com/orca-repos/orca-sub012/internal/core/ports/mocks"
	"github.com/orca-repos/orca-sub012/internal/engine/buildmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errStepFailed = errors.New("step failed")

func setupManagerTest(
	t *testing.T,
	settings domain.BuildSettings,
	lists ports.StepListFactory,
	opts ...buildmanager.Option,
) (*buildmanager.Manager, *managerEnv) {
	t.Helper()
	env := &managerEnv{
		output:   &recordingSink{},
		hub:      tasks.NewHub(),
		observer: &recordingObserver{},
		log:      &runLog{},
	}
	m := buildmanager.New(settings, nil, lists, env.output, env.hub, opts...)
	m.AddObserver(env.observer)
	startManager(t, m)
	return m, env
}

func TestManager_RunsStepsInQueueOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, env := setupManagerTest(t, domain.BuildSettings{AbortOnError: true}, nil)
		f := newFixture("app")

		a := newFakeStep("a", f.build, env.log)
		b := newFakeStep("b", f.build, env.log)
		b.enabled.Store(false)
		c := newFakeStep("c", f.build, env.log)
		d := newFakeStep("d", f.build, env.log)

		ok := m.BuildLists(context.Background(), []*ports.BuildStepList{
			stepList(domain.StepListBuild, a, b, c),
			stepList(domain.StepListDeploy, d),
		}, nil)
		require.True(t, ok)
		synctest.Wait()

		assert.Equal(t, []string{"a", "c", "d"}, env.log.Order())
		assert.Equal(t, []bool{true}, env.observer.Finished())
		assert.Contains(t, env.output.Text(), "Skipping disabled step b.")
		assert.Contains(t, env.output.Text(), "Running steps for project app...")
		assert.Contains(t, env.output.Text(), "Elapsed time: 00:00.")
		assert.Zero(t, b.inits.Load())
		assert.False(t, m.IsBuilding())
		assert.False(t, m.IsDeploying())
	})
}

func TestManager_DisabledStepDoesNotCountTowardsProgress(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, env := setupManagerTest(t, domain.BuildSettings{}, nil)
		f := newFixture("app")

		off := newFakeStep("off", f.build, env.log)
		off.enabled.Store(false)
		on := newFakeStep("on", f.build, env.log)
		on.release = make(chan struct{})

		require.True(t, m.BuildLists(context.Background(), []*ports.BuildStepList{stepList(domain.StepListBuild, off, on)}, nil))
		synctest.Wait()

		_, maximum := m.Progress()
		assert.Equal(t, 1, maximum)
		assert.Contains(t, env.output.Text(), "Skipping disabled step off.")

		close(on.release)
		synctest.Wait()
		assert.Equal(t, []bool{true}, env.observer.Finished())

		last := env.observer.Progress()
		require.NotEmpty(t, last)
		assert.Contains(t, last, progressPoint{1, 1, "Finished 1 of 1 step"})
	})
}

func TestManager_EnabledStateIsFrozenWhenQueued(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, env := setupManagerTest(t, domain.BuildSettings{}, nil)
		f := newFixture("app")

		first := newFakeStep("first", f.build, env.log)
		first.release = make(chan struct{})
		second := newFakeStep("second", f.build, env.log)

		require.True(t, m.BuildLists(context.Background(), []*ports.BuildStepList{stepList(domain.StepListBuild, first, second)}, nil))
		synctest.Wait()
		second.enabled.Store(false)

		progress, maximum := m.Progress()
		assert.Equal(t, 0, progress)
		assert.Equal(t, 2, maximum)

		close(first.release)
		synctest.Wait()

		assert.Equal(t, []string{"first", "second"}, env.log.Order())
		for _, p := range env.observer.Progress() {
			assert.LessOrEqual(t, p.progress, p.maximum)
			assert.GreaterOrEqual(t, p.progress, 0)
		}
	})
}

func TestManager_RunsOneStepAtATime(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, env := setupManagerTest(t, domain.BuildSettings{}, nil)
		f := newFixture("app")

		var all []ports.BuildStep
		for _, name := range []string{"s1", "s2", "s3", "s4", "s5"} {
			all = append(all, newFakeStep(name, f.build, env.log))
		}
		require.True(t, m.BuildLists(context.Background(), []*ports.BuildStepList{stepList(domain.StepListBuild, all...)}, nil))
		require.True(t, m.AppendStep(context.Background(), newFakeStep("s6", f.build, env.log), "Build"))
		synctest.Wait()

		assert.Equal(t, []string{"s1", "s2", "s3", "s4", "s5", "s6"}, env.log.Order())
		assert.Equal(t, 1, env.log.MaxInFlight())
	})
}

func TestManager_InitFailureLeavesQueueUntouched(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, env := setupManagerTest(t, domain.BuildSettings{}, nil)
		f := newFixture("app")

		good := newFakeStep("good", f.build, env.log)
		var goodOut ports.StepOutput
		bad := mocks.NewMockBuildStep(ctrl)
		bad.EXPECT().Enabled().Return(true).AnyTimes()
		bad.EXPECT().DisplayName().Return("bad").AnyTimes()
		bad.EXPECT().Project().Return(f.project).AnyTimes()
		bad.EXPECT().Target().Return(f.target).AnyTimes()
		bad.EXPECT().Init(gomock.Any()).Return(errStepFailed)

		wrapped := &capturingStep{fakeStep: good, capture: &goodOut}
		ok := m.BuildLists(context.Background(), []*ports.BuildStepList{stepList(domain.StepListBuild, wrapped, bad)}, nil)
		require.False(t, ok)
		synctest.Wait()

		progress, maximum := m.Progress()
		assert.Zero(t, progress)
		assert.Zero(t, maximum)
		assert.False(t, m.IsBuilding())
		assert.False(t, m.IsBuildingProject(f.project))
		assert.Empty(t, env.observer.Finished())
		assert.Empty(t, env.log.Order())

		text := env.output.Text()
		assert.Contains(t, text, "Error while building/deploying project app (kit: app-kit)")
		assert.Contains(t, text, `When executing step "bad"`)

		require.NotNil(t, goodOut)
		goodOut.AddOutput("late output\n", domain.StdOutFormat)
		assert.NotContains(t, env.output.Text(), "late output")
	})
}

// capturingStep remembers the output handed to Init.
type capturingStep struct {
	*fakeStep
	capture *ports.StepOutput
}

func (s *capturingStep) Init(out ports.StepOutput) error {
	*s.capture = out
	return s.fakeStep.Init(out)
}

func TestManager_ReferenceCounts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, env := setupManagerTest(t, domain.BuildSettings{}, nil)
		f := newFixture("app")
		other := newFixture("other")

		first := newFakeStep("first", f.build, env.log)
		first.release = make(chan struct{})
		second := newFakeStep("second", f.build, env.log)

		require.True(t, m.BuildLists(context.Background(), []*ports.BuildStepList{stepList(domain.StepListBuild, first, second)}, nil))
		synctest.Wait()

		assert.True(t, m.IsBuilding())
		assert.True(t, m.IsBuildingProject(f.project))
		assert.True(t, m.IsBuildingTarget(f.target))
		assert.True(t, m.IsBuildingConfiguration(f.build))
		assert.True(t, m.IsBuildingStep(first))
		assert.True(t, m.IsBuildingStep(second))
		assert.False(t, m.IsBuildingProject(other.project))

		close(first.release)
		synctest.Wait()

		assert.False(t, m.IsBuildingProject(f.project))
		assert.False(t, m.IsBuildingTarget(f.target))
		assert.False(t, m.IsBuildingConfiguration(f.build))
		assert.False(t, m.IsBuildingStep(first))
		assert.Equal(t, []*domain.Project{f.project, f.project}, env.observer.Changed())
	})
}

func TestManager_CancelStopsRunningStep(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, env := setupManagerTest(t, domain.BuildSettings{}, nil)
		f := newFixture("app")

		long := newFakeStep("long", f.build, env.log)
		long.release = make(chan struct{})
		after := newFakeStep("after", f.build, env.log)

		require.True(t, m.BuildLists(context.Background(), []*ports.BuildStepList{stepList(domain.StepListBuild, long, after)}, nil))
		synctest.Wait()

		m.Cancel()
		m.Cancel()
		synctest.Wait()
		m.Cancel()
		synctest.Wait()

		assert.True(t, long.wasCanceled())
		assert.Equal(t, []string{"long"}, env.log.Order())
		assert.Equal(t, []bool{false}, env.observer.Finished())
		assert.Contains(t, env.output.Text(), "Canceled build/deployment.")
		assert.False(t, m.IsBuilding())
		assert.False(t, m.IsBuildingProject(f.project))
		assert.Contains(t, env.observer.Progress(), progressPoint{0, 2, "Build/Deployment canceled"})
	})
}

func TestManager_AbortOnError(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, env := setupManagerTest(t, domain.BuildSettings{AbortOnError: true}, nil)
		f := newFixture("app")

		s1 := newFakeStep("1", f.build, env.log)
		s2 := newFakeStep("2", f.build, env.log)
		s2.runErr = errStepFailed
		s3 := newFakeStep("3", f.build, env.log)

		require.True(t, m.BuildLists(context.Background(), []*ports.BuildStepList{stepList(domain.StepListBuild, s1, s2, s3)}, nil))
		synctest.Wait()

		assert.Equal(t, []string{"1", "2"}, env.log.Order())
		assert.Equal(t, []bool{false}, env.observer.Finished())
		text := env.output.Text()
		assert.Contains(t, text, "Error while building/deploying project app (kit: app-kit)")
		assert.Contains(t, text, `When executing step "2"`)
		assert.NotContains(t, text, "configuration issues")
		assert.False(t, m.IsBuildingProject(f.project))
	})
}

func TestManager_ContinueOnErrorDropsSameTargetOnly(t *testing.T) {
	tests := []struct {
		name  string
		abort bool
		want  []string
	}{
		{name: "continue", abort: false, want: []string{"a1", "b1", "b2"}},
		{name: "abort", abort: true, want: []string{"a1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				m, env := setupManagerTest(t, domain.BuildSettings{AbortOnError: tt.abort}, nil)
				a := newFixture("a")
				a.target.Kit.Issues = []string{"no compiler"}
				b := newFixture("b")

				a1 := newFakeStep("a1", a.build, env.log)
				a1.runErr = errStepFailed
				a2 := newFakeStep("a2", a.build, env.log)
				a3 := newFakeStep("a3", a.build, env.log)
				b1 := newFakeStep("b1", b.build, env.log)
				b2 := newFakeStep("b2", b.build, env.log)

				require.True(t, m.BuildLists(context.Background(), []*ports.BuildStepList{
					stepList(domain.StepListBuild, a1, a2, a3),
					stepList(domain.StepListBuild, b1, b2),
				}, nil))
				synctest.Wait()

				assert.Equal(t, tt.want, env.log.Order())
				assert.Equal(t, []bool{false}, env.observer.Finished())
				assert.Contains(t, env.output.Text(), "The kit a-kit has configuration issues which might be the root cause for this problem.")
				assert.False(t, m.IsBuildingProject(a.project))
				assert.False(t, m.IsBuildingProject(b.project))
				if !tt.abort {
					assert.Contains(t, env.output.Text(), `Skipping step "a2".`)
					assert.Contains(t, env.output.Text(), `Skipping step "a3".`)
					assert.NotContains(t, env.output.Text(), `Skipping step "b1".`)
				}
			})
		})
	}
}

func TestManager_MessagesCarryTimeOfDay(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		clock := func() time.Time { return time.Date(2026, 3, 1, 13, 45, 7, 0, time.UTC) }
		m, env := setupManagerTest(t, domain.BuildSettings{}, nil, buildmanager.WithClock(clock))
		f := newFixture("app")

		failing := newFakeStep("compile", f.build, env.log)
		failing.runErr = errStepFailed
		skipped := newFakeStep("link", f.build, env.log)

		require.True(t, m.BuildLists(context.Background(), []*ports.BuildStepList{
			stepList(domain.StepListBuild, failing, skipped),
		}, nil))
		synctest.Wait()

		assert.Contains(t, env.output.Text(), "13:45:07: Skipping step \"link\".\n")
		assert.Equal(t, []string{"compile"}, env.log.Order())
	})
}

func TestManager_FailureInOneProjectStillRunsTheOther(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, env := setupManagerTest(t, domain.BuildSettings{AbortOnError: false}, nil)
		a := newFixture("a")
		b := newFixture("b")

		sa := newFakeStep("a", a.build, env.log)
		sa.runErr = errStepFailed
		sb := newFakeStep("b", b.build, env.log)

		require.True(t, m.BuildLists(context.Background(), []*ports.BuildStepList{
			stepList(domain.StepListBuild, sa),
			stepList(domain.StepListBuild, sb),
		}, nil))
		synctest.Wait()

		assert.Equal(t, []string{"a", "b"}, env.log.Order())
		assert.Equal(t, []bool{false}, env.observer.Finished())
	})
}

func TestManager_DefersStartWhileParsing(t *testing.T) {
	for _, success := range []bool{true, false} {
		synctest.Test(t, func(t *testing.T) {
			m, env := setupManagerTest(t, domain.BuildSettings{}, nil)
			f := newFixture("app")
			model := steps.NewProjectModel()
			model.BeginParse()

			s := newFakeStep("s", f.build, env.log)
			s.system = model

			require.True(t, m.BuildLists(context.Background(), []*ports.BuildStepList{stepList(domain.StepListBuild, s)}, nil))
			synctest.Wait()
			assert.Empty(t, env.log.Order())
			assert.True(t, m.IsBuilding())

			model.EndParse(success)
			synctest.Wait()

			if success {
				assert.Equal(t, []string{"s"}, env.log.Order())
				assert.Equal(t, []bool{true}, env.observer.Finished())
			} else {
				assert.Empty(t, env.log.Order())
				assert.Equal(t, []bool{false}, env.observer.Finished())
			}
			assert.False(t, m.IsBuilding())
		})
	}
}

func TestManager_CancelWhileWaitingForParser(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, env := setupManagerTest(t, domain.BuildSettings{}, nil)
		f := newFixture("app")
		model := steps.NewProjectModel()
		model.BeginParse()

		s := newFakeStep("s", f.build, env.log)
		s.system = model
		require.True(t, m.BuildLists(context.Background(), []*ports.BuildStepList{stepList(domain.StepListBuild, s)}, nil))

		m.Cancel()
		model.EndParse(true)
		synctest.Wait()

		assert.Empty(t, env.log.Order())
		assert.Equal(t, []bool{false}, env.observer.Finished())
		assert.False(t, m.IsBuildingProject(f.project))
	})
}

func TestManager_EmptyListsFinishImmediately(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, env := setupManagerTest(t, domain.BuildSettings{}, nil)
		require.True(t, m.BuildLists(context.Background(), nil, nil))
		synctest.Wait()
		assert.Equal(t, []bool{true}, env.observer.Finished())
	})
}

func TestManager_ClearsIssuesAndPrintsPreamble(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, env := setupManagerTest(t, domain.BuildSettings{ClearIssuesOnRebuild: true}, nil)
		f := newFixture("app")
		env.hub.AddTask(domain.Task{Category: domain.CategoryCompile, Severity: domain.SeverityError, Description: "old"})
		env.hub.AddTask(domain.Task{Category: domain.CategoryExtraCompiler, Severity: domain.SeverityError, Description: "kept"})
		require.Equal(t, 1, m.ErrorTaskCount())

		s := newFakeStep("s", f.build, env.log)
		require.True(t, m.BuildLists(context.Background(), []*ports.BuildStepList{stepList(domain.StepListBuild, s)},
			[]string{"The project x is not configured, skipping it.\n"}))
		synctest.Wait()

		assert.Zero(t, m.ErrorTaskCount())
		assert.False(t, m.TasksAvailable())
		assert.Equal(t, 1, env.hub.TaskCount(domain.CategoryExtraCompiler))
		assert.Contains(t, env.output.Text(), "The project x is not configured, skipping it.\n")
		assert.Contains(t, env.output.Text(), "run s\n")
	})
}

func TestManager_StepTasksAreForwarded(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, env := setupManagerTest(t, domain.BuildSettings{}, nil)
		f := newFixture("app")

		s := &taskStep{fakeStep: newFakeStep("s", f.build, env.log)}
		require.True(t, m.BuildLists(context.Background(), []*ports.BuildStepList{stepList(domain.StepListBuild, s)}, nil))
		synctest.Wait()

		assert.Equal(t, 1, m.ErrorTaskCount())
		assert.True(t, m.TasksAvailable())
	})
}

type taskStep struct {
	*fakeStep
}

func (s *taskStep) Run(ctx context.Context, out ports.StepOutput) error {
	out.AddTask(domain.Task{Category: domain.CategoryCompile, Severity: domain.SeverityError, Description: "boom"})
	return s.fakeStep.Run(ctx, out)
}

func TestManager_AboutToRemoveProject(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, env := setupManagerTest(t, domain.BuildSettings{}, nil)
		f := newFixture("app")
		other := newFixture("other")

		s := newFakeStep("s", f.build, env.log)
		s.release = make(chan struct{})
		require.True(t, m.BuildLists(context.Background(), []*ports.BuildStepList{stepList(domain.StepListBuild, s)}, nil))
		synctest.Wait()

		m.AboutToRemoveProject(other.project)
		synctest.Wait()
		assert.False(t, s.wasCanceled())

		m.AboutToRemoveProject(f.project)
		synctest.Wait()
		assert.True(t, s.wasCanceled())
		assert.Equal(t, []bool{false}, env.observer.Finished())
	})
}
