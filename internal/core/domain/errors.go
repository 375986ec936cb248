package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the workspace file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the workspace file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no workspace file exists in the directory tree.
	ErrConfigNotFound = zerr.New("could not find orca.yaml")

	// ErrInvalidProjectName is returned when a project name is invalid.
	ErrInvalidProjectName = zerr.New("project name can only contain alphanumeric characters, hyphens and underscores")

	// ErrDuplicateProjectName is returned when multiple projects share the same name.
	ErrDuplicateProjectName = zerr.New("duplicate project name")

	// ErrMissingDependency is returned when a project depends on a project that does not exist.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in a dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrProjectNotFound is returned when a requested project is not part of the workspace.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrUnknownKit is returned when a target references a kit that is not declared.
	ErrUnknownKit = zerr.New("unknown kit")

	// ErrUnknownDevice is returned when a kit references a device that is not declared.
	ErrUnknownDevice = zerr.New("unknown device")

	// ErrInvalidDevice is returned when a device definition is incomplete.
	ErrInvalidDevice = zerr.New("invalid device definition")

	// ErrInvalidGenerator is returned when a generator definition cannot be compiled.
	ErrInvalidGenerator = zerr.New("invalid generator definition")

	// ErrRunConfigNotFound is returned when the requested run configuration does not exist.
	ErrRunConfigNotFound = zerr.New("run configuration not found")

	// ErrInvalidSetting is returned when a settings value is out of range.
	ErrInvalidSetting = zerr.New("invalid setting")

	// ErrSettingsLoadFailed is returned when the settings file cannot be loaded.
	ErrSettingsLoadFailed = zerr.New("failed to load settings")

	// ErrInvalidPortSpec is returned when a port range specification cannot be parsed.
	ErrInvalidPortSpec = zerr.New("invalid port specification")

	// ErrBuildExecutionFailed is returned when the build queue finishes unsuccessfully.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrBuildQueueFailed is returned when step lists could not be queued.
	ErrBuildQueueFailed = zerr.New("failed to queue build steps")

	// ErrRunFailed is returned when a run control finishes because a worker failed.
	ErrRunFailed = zerr.New("run failed")

	// ErrNoExecutable is returned when a step or generator has no command to run.
	ErrNoExecutable = zerr.New("no executable specified")

	// ErrNoDevice is returned when a remote process is requested without a device.
	ErrNoDevice = zerr.New("no device")

	// ErrProcessCreationUnsupported is returned when a device cannot create processes.
	ErrProcessCreationUnsupported = zerr.New("device is not able to create processes")

	// ErrProcessFailedToStart is returned when a process could not be started.
	ErrProcessFailedToStart = zerr.New("process failed to start")

	// ErrProcessCrashed is returned when a process terminated abnormally.
	ErrProcessCrashed = zerr.New("process crashed")

	// ErrProcessExitCode is returned when a process exited with a non-zero code.
	ErrProcessExitCode = zerr.New("process exited with non-zero code")

	// ErrAlreadyRunning is returned when a launcher is started twice.
	ErrAlreadyRunning = zerr.New("process is already running")

	// ErrSSHConnectFailed is returned when a remote connection cannot be established.
	ErrSSHConnectFailed = zerr.New("failed to connect to remote host")

	// ErrSSHKeyReadFailed is returned when the private key file cannot be used.
	ErrSSHKeyReadFailed = zerr.New("failed to read private key")

	// ErrSignalFailed is returned when a process could not be interrupted or killed.
	ErrSignalFailed = zerr.New("failed to signal process")

	// ErrPoolClosed is returned when acquiring from a closed connection pool.
	ErrPoolClosed = zerr.New("connection pool is closed")

	// ErrDebugOutputUnsupported is returned when debug output cannot be captured on this platform.
	ErrDebugOutputUnsupported = zerr.New("debug output capture is not supported on this platform")

	// ErrGeneratorNotFound is returned when an extra compiler references an unknown generator.
	ErrGeneratorNotFound = zerr.New("generator not found")

	// ErrPrepareFailed is returned when the input of an extra compiler cannot be staged.
	ErrPrepareFailed = zerr.New("failed to prepare generator input")

	// ErrSourceReadFailed is returned when the source of an extra compiler cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read generator source")

	// ErrWatcherFailed is returned when the file watcher cannot be set up.
	ErrWatcherFailed = zerr.New("failed to watch files")

	// ErrInvalidTransition is recorded when a run control refuses a state change.
	ErrInvalidTransition = zerr.New("invalid run control state transition")

	// ErrWorkerFailed is recorded on the span of a run worker that reported a failure.
	ErrWorkerFailed = zerr.New("run worker failed")

	// ErrForwardFailed is returned when a debug channel cannot be forwarded.
	ErrForwardFailed = zerr.New("failed to forward channel")

	// ErrSpanFailed completes the progress vertex of a span that ended with an error status.
	ErrSpanFailed = zerr.New("span failed")
)
