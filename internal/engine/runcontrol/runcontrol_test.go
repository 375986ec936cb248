package runcontrol_test

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"github.com/orca-repos/orca-sub012/internal/core/ports/mocks"
	"github.com/orca-repos/orca-sub012/internal/engine/runcontrol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunControl_StartsWorkersInDependencyOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil)
		a, _ := env.worker(rc, "a")
		b, _ := env.worker(rc, "b")
		c, _ := env.worker(rc, "c")
		require.NoError(t, a.AddStartDependency(b))
		require.NoError(t, b.AddStartDependency(c))

		rc.InitiateStart()
		synctest.Wait()

		assert.Equal(t, []string{"start:c", "start:b", "start:a"}, env.log.Events())
		assert.True(t, rc.IsRunning())
		for _, w := range []*runcontrol.Worker{a, b, c} {
			assert.Equal(t, domain.WorkerRunning, w.State())
		}
	})
}

func TestRunControl_StartsOneWorkerAtATime(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil)
		_, slow := env.worker(rc, "slow")
		var pending *runcontrol.Worker
		slow.onStart = func(w *runcontrol.Worker) { pending = w }
		env.worker(rc, "fast")

		rc.InitiateStart()
		synctest.Wait()
		assert.Equal(t, []string{"start:slow"}, env.log.Events())
		assert.True(t, rc.IsStarting())

		pending.ReportStarted()
		synctest.Wait()
		assert.Equal(t, []string{"start:slow", "start:fast"}, env.log.Events())
		assert.True(t, rc.IsRunning())
	})
}

func TestRunControl_StopsInStopDependencyOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil)
		a, _ := env.worker(rc, "a")
		b, _ := env.worker(rc, "b")
		c, _ := env.worker(rc, "c")
		require.NoError(t, c.AddStopDependency(b))
		require.NoError(t, b.AddStopDependency(a))

		rc.InitiateStart()
		synctest.Wait()
		rc.InitiateStop()
		synctest.Wait()

		assert.Equal(t, []string{"start:a", "start:b", "start:c", "stop:a", "stop:b", "stop:c"}, env.log.Events())
		assert.True(t, rc.IsStopped())
		require.NoError(t, rc.WaitStopped(context.Background()))
	})
}

func TestRunControl_RejectsDependencyCycles(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil)
		a, _ := env.worker(rc, "a")
		b, _ := env.worker(rc, "b")
		c, _ := env.worker(rc, "c")

		require.NoError(t, a.AddStartDependency(b))
		require.NoError(t, b.AddStartDependency(c))
		err := c.AddStartDependency(a)
		require.ErrorContains(t, err, domain.ErrCycleDetected.Error())

		err = a.AddStopDependency(a)
		require.ErrorContains(t, err, domain.ErrCycleDetected.Error())

		// Start and stop edges form separate graphs.
		require.NoError(t, c.AddStopDependency(a))
	})
}

func TestRunControl_RejectsWorkersOfOtherControls(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil)
		other, otherEnv := setupRunControlTest(t, nil)
		a, _ := env.worker(rc, "a")
		b, _ := otherEnv.worker(other, "b")

		require.ErrorContains(t, a.AddStartDependency(b), domain.ErrMissingDependency.Error())
	})
}

func TestRunControl_FailureTearsDownTheRun(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil)
		a, _ := env.worker(rc, "a")
		b, bImpl := env.worker(rc, "b")
		bImpl.onStart = func(w *runcontrol.Worker) { w.ReportFailure("Port 1234 is taken.") }
		require.NoError(t, b.AddStartDependency(a))

		rc.InitiateStart()
		synctest.Wait()

		assert.Equal(t, []string{"start:a", "start:b", "stop:a"}, env.log.Events())
		assert.Contains(t, env.output.Text(), "Port 1234 is taken.\n")
		assert.True(t, rc.IsStopped())
		assert.True(t, rc.Failed())
		assert.Equal(t, domain.WorkerDone, a.State())
		assert.Equal(t, domain.WorkerDone, b.State())
	})
}

func TestRunControl_EssentialWorkerStopsEverything(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil)
		app, _ := env.worker(rc, "app")
		app.SetEssential(true)
		env.worker(rc, "helper")

		rc.InitiateStart()
		synctest.Wait()
		require.True(t, rc.IsRunning())

		app.ReportStopped()
		synctest.Wait()

		assert.Equal(t, []string{"start:app", "start:helper", "stop:helper"}, env.log.Events())
		assert.True(t, rc.IsStopped())
		assert.False(t, rc.Failed())
	})
}

func TestRunControl_SpontaneousStopStopsOnlyWaitingDependents(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil)
		a, _ := env.worker(rc, "a")
		b, _ := env.worker(rc, "b")
		c, _ := env.worker(rc, "c")
		require.NoError(t, b.AddStopDependency(a))

		rc.InitiateStart()
		synctest.Wait()
		a.ReportStopped()
		synctest.Wait()

		assert.Equal(t, []string{"start:a", "start:b", "start:c", "stop:b"}, env.log.Events())
		assert.Equal(t, domain.WorkerDone, a.State())
		assert.Equal(t, domain.WorkerDone, b.State())
		assert.Equal(t, domain.WorkerRunning, c.State())
		assert.True(t, rc.IsRunning())

		c.ReportStopped()
		synctest.Wait()
		assert.True(t, rc.IsStopped())
	})
}

func TestRunControl_StartWatchdog(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil, runcontrol.WithWatchdogs(domain.WorkerSettings{StartTimeout: 5 * time.Second}))
		_, hung := env.worker(rc, "hung")
		hung.onStart = never

		rc.InitiateStart()
		synctest.Wait()
		time.Sleep(4 * time.Second)
		synctest.Wait()
		require.True(t, rc.IsStarting())

		time.Sleep(2 * time.Second)
		synctest.Wait()

		assert.Contains(t, env.output.Text(), "Worker start timed out.\n")
		assert.True(t, rc.IsStopped())
	})
}

func TestRunControl_StartWatchdogDisarmedByReport(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil, runcontrol.WithWatchdogs(domain.WorkerSettings{StartTimeout: time.Second}))
		env.worker(rc, "a")

		rc.InitiateStart()
		synctest.Wait()
		time.Sleep(10 * time.Second)
		synctest.Wait()

		assert.True(t, rc.IsRunning())
		assert.NotContains(t, env.output.Text(), "timed out")
	})
}

func TestRunControl_StopWatchdogCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil)
		w, impl := env.worker(rc, "stubborn")
		impl.onStop = never
		fired := make(chan struct{})
		w.SetStopTimeout(3*time.Second, func() {
			close(fired)
			w.ReportStopped()
		})

		rc.InitiateStart()
		synctest.Wait()
		rc.InitiateStop()
		synctest.Wait()
		require.True(t, rc.IsStopping())

		time.Sleep(3 * time.Second)
		synctest.Wait()

		select {
		case <-fired:
		default:
			t.Fatal("stop timeout callback was not called")
		}
		assert.True(t, rc.IsStopped())
		assert.NotContains(t, env.output.Text(), "Worker stop timed out.")
	})
}

func TestRunControl_StopWatchdogFailsWorker(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil, runcontrol.WithWatchdogs(domain.WorkerSettings{StopTimeout: 2 * time.Second}))
		_, impl := env.worker(rc, "stubborn")
		impl.onStop = never

		rc.InitiateStart()
		synctest.Wait()
		rc.InitiateStop()
		time.Sleep(3 * time.Second)
		synctest.Wait()

		assert.Contains(t, env.output.Text(), "Worker stop timed out.\n")
		assert.True(t, rc.IsStopped())
	})
}

func TestRunControl_ForceStop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil)
		a, impl := env.worker(rc, "a")
		impl.onStop = never
		b, _ := env.worker(rc, "b")

		rc.InitiateStart()
		synctest.Wait()
		rc.InitiateStop()
		synctest.Wait()
		require.True(t, rc.IsStopping())

		rc.ForceStop()
		synctest.Wait()

		assert.True(t, rc.IsStopped())
		assert.Equal(t, domain.WorkerDone, a.State())
		assert.Equal(t, domain.WorkerDone, b.State())
	})
}

func TestRunControl_FinishEndsTheLoop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil)
		env.worker(rc, "a")

		var states []domain.RunControlState
		rc.OnStateChanged(func(s domain.RunControlState) { states = append(states, s) })

		rc.InitiateStart()
		synctest.Wait()
		rc.InitiateFinish()
		synctest.Wait()

		<-env.done
		require.NoError(t, rc.WaitFinished(context.Background()))
		assert.Equal(t, []domain.RunControlState{
			domain.RunControlStarting,
			domain.RunControlRunning,
			domain.RunControlFinishing,
			domain.RunControlFinished,
		}, states)
	})
}

func TestRunControl_ReStart(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil)
		a, _ := env.worker(rc, "a")
		a.SetSupportsReRunning(true)

		assert.False(t, rc.SupportsReRunning())
		rc.InitiateStart()
		synctest.Wait()
		assert.False(t, rc.SupportsReRunning())

		rc.InitiateStop()
		synctest.Wait()
		require.True(t, rc.IsStopped())
		assert.True(t, rc.SupportsReRunning())

		rc.InitiateReStart()
		synctest.Wait()
		assert.True(t, rc.IsRunning())
		assert.Equal(t, []string{"start:a", "stop:a", "start:a"}, env.log.Events())
	})
}

func TestRunControl_ReportDoneLetsDependentsStart(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil)
		setup, impl := env.worker(rc, "setup")
		impl.onStart = func(w *runcontrol.Worker) { w.ReportDone() }
		app, _ := env.worker(rc, "app")
		require.NoError(t, app.AddStartDependency(setup))

		rc.InitiateStart()
		synctest.Wait()

		assert.Equal(t, []string{"start:setup", "start:app"}, env.log.Events())
		assert.Equal(t, domain.WorkerDone, setup.State())
		assert.True(t, rc.IsRunning())
	})
}

func TestRunControl_IgnoresStopBeforeStart(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil)
		env.worker(rc, "a")

		rc.InitiateStop()
		rc.InitiateReStart()
		synctest.Wait()

		assert.Equal(t, domain.RunControlInitialized, rc.State())
		assert.Empty(t, env.log.Events())
		require.NoError(t, rc.WaitStopped(context.Background()))
	})
}

func TestRunControl_WaitStoppedHonorsContext(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, env := setupRunControlTest(t, nil)
		env.worker(rc, "a")
		rc.InitiateStart()
		synctest.Wait()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.ErrorIs(t, rc.WaitStopped(ctx), context.DeadlineExceeded)
	})
}

func TestRunControl_RecordsSpans(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tracer := mocks.NewMockTracer(ctrl)
		session := mocks.NewMockSpan(ctrl)
		worker := mocks.NewMockSpan(ctrl)

		tracer.EXPECT().Start(gomock.Any(), "run app", gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
				return ctx, session
			})
		tracer.EXPECT().Start(gomock.Any(), "worker a", gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
				return ctx, worker
			})
		worker.EXPECT().RecordError(gomock.Any())
		worker.EXPECT().End()
		session.EXPECT().End()

		rc, env := setupRunControlTest(t, nil, runcontrol.WithTracer(tracer))
		_, impl := env.worker(rc, "a")
		impl.onStart = func(w *runcontrol.Worker) { w.ReportFailure("broken") }

		rc.InitiateStart()
		synctest.Wait()
		assert.True(t, rc.IsStopped())
	})
}

func TestRunControl_RunningApplication(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mocks.NewMockDevice(ctrl)
		remote.EXPECT().Type().Return(domain.SSHDevice).AnyTimes()

		local, _ := setupRunControlTest(t, nil)
		onBoard, _ := setupRunControlTest(t, remote)

		assert.True(t, local.IsDesktop())
		assert.False(t, onBoard.IsDesktop())
		assert.Equal(t, "app", local.DisplayName())
		assert.Equal(t, "app", local.Project().Name)
		assert.Equal(t, "/build/app/app", local.RunConfiguration().Executable)
		assert.Equal(t, "/build/app/app", local.Runnable().Executable)
	})
}
