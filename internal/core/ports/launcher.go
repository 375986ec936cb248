package ports

import (
	"context"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
)

//go:generate mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks

// LauncherListener receives the events of an application launcher.
type LauncherListener interface {
	OnProcessStarted()
	OnAppendMessage(text string, format domain.OutputFormat)
	OnProcessExited(exitCode int, status domain.ExitStatus)
	OnError(err domain.ProcessError)
}

// Launcher starts a single application locally or on a device.
type Launcher interface {
	// SetListener installs the event receiver. It must be called before Start.
	SetListener(l LauncherListener)
	// Start launches the runnable. A desktop device runs it locally; a nil device fails to start.
	Start(ctx context.Context, r domain.Runnable, device Device)
	// Stop terminates the application.
	Stop()
	// IsRunning reports whether the application is running.
	IsRunning() bool
	// ApplicationPID returns the process id, or 0.
	ApplicationPID() int
	// ErrorString describes the last error.
	ErrorString() string
}

// LauncherFactory creates launchers configured from the settings.
type LauncherFactory interface {
	NewLauncher() Launcher
}
