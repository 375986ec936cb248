package domain

import "time"

// Settings are the user preferences that drive the orchestrator.
type Settings struct {
	Build  BuildSettings
	Run    RunSettings
	SSH    SSHSettings
	Worker WorkerSettings
}

// BuildSettings control the build manager.
type BuildSettings struct {
	AbortOnError         bool
	StopBeforeBuild      StopBeforeBuild
	PromptToStop         bool
	BuildBeforeDeploy    BuildBeforeDeploy
	DeployBeforeRun      bool
	ClearIssuesOnRebuild bool
}

// RunSettings control application launches.
type RunSettings struct {
	MergeStderrAndStdout bool
	UseTerminal          bool
	// Environment overlays the system environment of launched processes.
	Environment map[string]string
}

// SSHSettings control remote connections.
type SSHSettings struct {
	// SharingTimeout is how long an unused connection is kept open.
	SharingTimeout time.Duration
	// KillTimeout is how long a remote kill may take before the process is declared crashed.
	KillTimeout time.Duration
}

// WorkerSettings control run worker watchdogs. Zero disables a watchdog.
type WorkerSettings struct {
	StartTimeout time.Duration
	StopTimeout  time.Duration
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Build: BuildSettings{
			AbortOnError:         true,
			StopBeforeBuild:      StopNone,
			PromptToStop:         true,
			BuildBeforeDeploy:    BuildBeforeDeployWholeProject,
			DeployBeforeRun:      true,
			ClearIssuesOnRebuild: true,
		},
		Run: RunSettings{
			MergeStderrAndStdout: false,
			Environment:          map[string]string{},
		},
		SSH: SSHSettings{
			SharingTimeout: 10 * time.Minute,
			KillTimeout:    5 * time.Second,
		},
	}
}
