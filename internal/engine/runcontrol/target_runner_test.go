package runcontrol_test

import (
	"context"
	"testing"
	"testing/synctest"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"github.com/orca-repos/orca-sub012/internal/core/ports/mocks"
	"github.com/orca-repos/orca-sub012/internal/engine/runcontrol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type runnerEnv struct {
	*controlEnv
	launcher *mocks.MockLauncher
	listener chan ports.LauncherListener
}

func setupTargetRunnerTest(t *testing.T, device ports.Device, opts ...runcontrol.TargetRunnerOption) (*runcontrol.RunControl, *runcontrol.Worker, *runnerEnv) {
	t.Helper()
	ctrl := gomock.NewController(t)
	launchers := mocks.NewMockLauncherFactory(ctrl)
	launcher := mocks.NewMockLauncher(ctrl)
	env := &runnerEnv{launcher: launcher, listener: make(chan ports.LauncherListener, 1)}

	launchers.EXPECT().NewLauncher().Return(launcher).AnyTimes()
	launcher.EXPECT().SetListener(gomock.Any()).Do(func(l ports.LauncherListener) {
		env.listener <- l
	}).AnyTimes()

	rc, cenv := setupRunControlTest(t, device)
	env.controlEnv = cenv
	w := rc.AddTargetRunner(launchers, opts...)
	return rc, w, env
}

func TestTargetRunner_ReportsExitCode(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, w, env := setupTargetRunnerTest(t, nil)
		env.launcher.EXPECT().Start(gomock.Any(), gomock.Any(), nil).
			Do(func(_ context.Context, r domain.Runnable, _ ports.Device) {
				assert.Equal(t, "/build/app/app", r.Executable)
			})
		env.launcher.EXPECT().ApplicationPID().Return(4242)

		rc.InitiateStart()
		synctest.Wait()
		l := <-env.listener

		l.OnProcessStarted()
		l.OnAppendMessage("hello\n", domain.StdOutFormat)
		synctest.Wait()
		require.True(t, rc.IsRunning())
		assert.Equal(t, 4242, rc.ApplicationPID())
		assert.True(t, w.IsEssential())

		l.OnProcessExited(3, domain.NormalExit)
		l.OnError(domain.Crashed)
		synctest.Wait()

		assert.Equal(t, "Starting /build/app/app...\nhello\n/build/app/app exited with code 3\n", env.output.Text())
		assert.True(t, rc.IsStopped())
		assert.Zero(t, rc.ApplicationPID())
	})
}

func TestTargetRunner_Crash(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, _, env := setupTargetRunnerTest(t, nil)
		env.launcher.EXPECT().Start(gomock.Any(), gomock.Any(), nil)
		env.launcher.EXPECT().ApplicationPID().Return(1)

		rc.InitiateStart()
		synctest.Wait()
		l := <-env.listener
		l.OnProcessStarted()
		l.OnProcessExited(-1, domain.CrashExit)
		synctest.Wait()

		assert.Contains(t, env.output.Text(), "/build/app/app crashed.\n")
		assert.True(t, rc.IsStopped())
	})
}

func TestTargetRunner_NoExecutable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, _, env := setupTargetRunnerTest(t, nil, runcontrol.WithPrepare(func(r domain.Runnable) domain.Runnable {
			r.Executable = ""
			return r
		}))

		rc.InitiateStart()
		synctest.Wait()

		assert.Contains(t, env.output.Text(), "No executable specified.\n")
		assert.True(t, rc.IsStopped())
	})
}

func TestTargetRunner_FailedToStart(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, _, env := setupTargetRunnerTest(t, nil)
		env.launcher.EXPECT().Start(gomock.Any(), gomock.Any(), nil)

		rc.InitiateStart()
		synctest.Wait()
		l := <-env.listener
		l.OnError(domain.FailedToStart)
		synctest.Wait()

		assert.Contains(t, env.output.Text(), `Either the invoked program "/build/app/app" is missing`)
		assert.True(t, rc.IsStopped())
		assert.True(t, rc.Failed())
	})
}

func TestTargetRunner_StopIsReportedAsForced(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, _, env := setupTargetRunnerTest(t, nil)
		env.launcher.EXPECT().Start(gomock.Any(), gomock.Any(), nil)
		env.launcher.EXPECT().ApplicationPID().Return(7)

		rc.InitiateStart()
		synctest.Wait()
		l := <-env.listener
		l.OnProcessStarted()
		synctest.Wait()

		env.launcher.EXPECT().Stop().Do(func() { l.OnError(domain.Crashed) })
		rc.InitiateStop()
		synctest.Wait()

		assert.Contains(t, env.output.Text(), "The process was ended forcefully.\n")
		assert.True(t, rc.IsStopped())
	})
}

func TestTargetRunner_IgnoresTimeouts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rc, _, env := setupTargetRunnerTest(t, nil)
		env.launcher.EXPECT().Start(gomock.Any(), gomock.Any(), nil)
		env.launcher.EXPECT().ApplicationPID().Return(7)

		rc.InitiateStart()
		synctest.Wait()
		l := <-env.listener
		l.OnProcessStarted()
		l.OnError(domain.Timedout)
		synctest.Wait()

		assert.True(t, rc.IsRunning())
	})
}

func TestTargetRunner_RemoteDeviceSkipsPID(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		board := mocks.NewMockDevice(ctrl)
		board.EXPECT().Type().Return(domain.SSHDevice).AnyTimes()

		rc, _, env := setupTargetRunnerTest(t, board)
		env.launcher.EXPECT().Start(gomock.Any(), gomock.Any(), board)

		rc.InitiateStart()
		synctest.Wait()
		l := <-env.listener
		l.OnProcessStarted()
		synctest.Wait()

		assert.True(t, rc.IsRunning())
		assert.Zero(t, rc.ApplicationPID())
	})
}

func TestUserMessageForProcessError(t *testing.T) {
	tests := []struct {
		err  domain.ProcessError
		want string
	}{
		{domain.FailedToStart, "The process failed to start. Either the invoked program \"/bin/x\" is missing, or you may have insufficient permissions to invoke the program."},
		{domain.Crashed, "The process crashed."},
		{domain.Timedout, ""},
		{domain.WriteError, "An error occurred when attempting to write to the process. For example, the process may not be running, or it may have closed its input channel."},
		{domain.ReadError, "An error occurred when attempting to read from the process. For example, the process may not be running."},
		{domain.UnknownError, "An unknown error in the process occurred."},
	}
	for _, tt := range tests {
		t.Run(tt.err.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, runcontrol.UserMessageForProcessError(tt.err, "/bin/x"))
		})
	}
}
