package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// StepListKind identifies the purpose of a build step list.
type StepListKind int

const (
	// StepListBuild compiles the configuration.
	StepListBuild StepListKind = iota
	// StepListClean removes build artifacts.
	StepListClean
	// StepListDeploy installs the artifacts on the device.
	StepListDeploy
)

// DisplayName returns the name used for queue entries of this kind.
func (k StepListKind) DisplayName() string {
	switch k {
	case StepListClean:
		return "Clean"
	case StepListDeploy:
		return "Deploy"
	default:
		return "Build"
	}
}

// String implements fmt.Stringer.
func (k StepListKind) String() string {
	return strings.ToLower(k.DisplayName())
}

// ConfigSelection selects which build configurations of a target are used.
type ConfigSelection int

const (
	// ConfigSelectionActive uses only the active build configuration.
	ConfigSelectionActive ConfigSelection = iota
	// ConfigSelectionAll uses every build configuration.
	ConfigSelectionAll
)

// StopBeforeBuild selects which running applications are stopped before a build.
type StopBeforeBuild int

const (
	// StopNone never stops running applications.
	StopNone StopBeforeBuild = iota
	// StopAll stops every running application.
	StopAll
	// StopSameProject stops applications of the projects being built.
	StopSameProject
	// StopSameBuildDir stops applications whose executable lives in a build directory being built.
	StopSameBuildDir
	// StopSameApp stops applications whose executable is the one being built.
	StopSameApp
)

var stopBeforeBuildNames = map[string]StopBeforeBuild{
	"none":           StopNone,
	"all":            StopAll,
	"same_project":   StopSameProject,
	"same_build_dir": StopSameBuildDir,
	"same_app":       StopSameApp,
}

// ParseStopBeforeBuild converts a settings value into a StopBeforeBuild mode.
func ParseStopBeforeBuild(s string) (StopBeforeBuild, error) {
	if m, ok := stopBeforeBuildNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return StopNone, zerr.With(ErrInvalidSetting, "build.stop_before_build", s)
}

// BuildBeforeDeploy selects what is built before a deployment.
type BuildBeforeDeploy int

const (
	// BuildBeforeDeployOff deploys without building.
	BuildBeforeDeployOff BuildBeforeDeploy = iota
	// BuildBeforeDeployWholeProject builds the whole project first.
	BuildBeforeDeployWholeProject
	// BuildBeforeDeployAppOnly builds only the application of the run configuration first.
	BuildBeforeDeployAppOnly
)

var buildBeforeDeployNames = map[string]BuildBeforeDeploy{
	"off":           BuildBeforeDeployOff,
	"whole_project": BuildBeforeDeployWholeProject,
	"app_only":      BuildBeforeDeployAppOnly,
}

// ParseBuildBeforeDeploy converts a settings value into a BuildBeforeDeploy mode.
func ParseBuildBeforeDeploy(s string) (BuildBeforeDeploy, error) {
	if m, ok := buildBeforeDeployNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return BuildBeforeDeployOff, zerr.With(ErrInvalidSetting, "build.build_before_deploy", s)
}

// BuildForRunConfigStatus is the outcome of building before a run.
type BuildForRunConfigStatus int

const (
	// NotBuilding means nothing had to be built.
	NotBuilding BuildForRunConfigStatus = iota
	// Building means a build was queued or is in progress.
	Building
	// BuildFailed means the build could not be queued.
	BuildFailed
)

// OutputFormat tags text written to the output window.
type OutputFormat int

const (
	// NormalMessageFormat is an informational message of the orchestrator.
	NormalMessageFormat OutputFormat = iota
	// ErrorMessageFormat is an error message of the orchestrator.
	ErrorMessageFormat
	// LogMessageFormat is low-priority diagnostic text.
	LogMessageFormat
	// StdOutFormat is standard output of a process.
	StdOutFormat
	// StdErrFormat is standard error of a process.
	StdErrFormat
	// DebugFormat is debug output captured from a process.
	DebugFormat
	// GeneralMessageFormat is a message without a source.
	GeneralMessageFormat
)

// IsMessage reports whether text in this format originates from the orchestrator itself.
func (f OutputFormat) IsMessage() bool {
	return f == NormalMessageFormat || f == ErrorMessageFormat
}
