package ports

import (
	"context"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
)

//go:generate mockgen -source=run.go -destination=mocks/mock_run.go -package=mocks

// RunningApplication is a run session that may have to be stopped before a build.
type RunningApplication interface {
	// DisplayName identifies the session in prompts.
	DisplayName() string
	// Project returns the project the session belongs to.
	Project() *domain.Project
	// RunConfiguration returns the configuration the session was started from.
	RunConfiguration() *domain.RunConfiguration
	// IsRunning reports whether the session is active.
	IsRunning() bool
	// IsDesktop reports whether the session runs on the local machine.
	IsDesktop() bool
	// InitiateStop asks the session to stop.
	InitiateStop()
	// WaitStopped blocks until the session is no longer running.
	WaitStopped(ctx context.Context) error
}

// RunControlRegistry lists the live run sessions.
type RunControlRegistry interface {
	RunningApplications() []RunningApplication
}

// StopPrompter asks the user whether applications may be stopped.
type StopPrompter interface {
	// ConfirmStop returns true when the listed applications may be stopped.
	ConfirmStop(title, text string, names []string) bool
}
