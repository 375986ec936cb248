// Package domain contains the core domain models of the build orchestration core.
package domain

import (
	"path/filepath"
	"strings"
)

// Project is a buildable unit of the workspace.
type Project struct {
	// Name is the display name of the project.
	Name string
	// Dir is the absolute project directory.
	Dir string
	// Targets are the kit-specific targets of the project.
	Targets []*Target
	// ActiveTarget is the target used for builds of the active configuration.
	ActiveTarget *Target
	// NeedsConfiguration reports whether the project has not been configured yet.
	NeedsConfiguration bool
	// Dependencies lists the names of projects that must be built first.
	Dependencies []string
}

// DisplayName returns the name shown in the output window.
func (p *Project) DisplayName() string {
	if p == nil {
		return ""
	}
	return p.Name
}

// Target binds a project to a kit.
type Target struct {
	Name    string
	Project *Project
	Kit     *Kit

	BuildConfigurations       []*ProjectConfiguration
	ActiveBuildConfiguration  *ProjectConfiguration
	ActiveDeployConfiguration *ProjectConfiguration

	RunConfigurations      []*RunConfiguration
	ActiveRunConfiguration *RunConfiguration
}

// DisplayName returns the name shown in the output window.
func (t *Target) DisplayName() string {
	if t == nil {
		return ""
	}
	return t.Name
}

// Kit describes the toolchain and device a target is built for.
type Kit struct {
	Name     string
	DeviceID string
	// Issues lists configuration problems. A kit with issues is invalid.
	Issues []string
}

// DisplayName returns the kit name.
func (k *Kit) DisplayName() string {
	if k == nil {
		return ""
	}
	return k.Name
}

// IsValid reports whether the kit has no configuration issues.
func (k *Kit) IsValid() bool {
	return k != nil && len(k.Issues) == 0
}

// ConfigurationKind distinguishes build from deploy configurations.
type ConfigurationKind int

const (
	// BuildConfigurationKind holds build and clean step lists.
	BuildConfigurationKind ConfigurationKind = iota
	// DeployConfigurationKind holds the deploy step list.
	DeployConfigurationKind
)

// ProjectConfiguration is a build or deploy configuration of a target.
type ProjectConfiguration struct {
	ID          string
	DisplayName string
	Kind        ConfigurationKind
	Target      *Target
	// BuildDir is the output directory. It is empty for deploy configurations.
	BuildDir string
	// Steps holds the step specifications per list kind.
	Steps map[StepListKind][]StepSpec
}

// StepSpecs returns the step specifications of the given list kind.
func (c *ProjectConfiguration) StepSpecs(kind StepListKind) []StepSpec {
	if c == nil {
		return nil
	}
	return c.Steps[kind]
}

// StepSpec describes a single command-based build step.
type StepSpec struct {
	Name        string
	Command     string
	Arguments   []string
	WorkingDir  string
	Environment map[string]string
	Enabled     bool
	// Parser names the output parser used to turn stderr lines into tasks.
	Parser string
}

// RunConfiguration describes how to launch the artifact of a target.
type RunConfiguration struct {
	Name        string
	Target      *Target
	Executable  string
	Arguments   []string
	WorkingDir  string
	Environment map[string]string
	RunAsRoot   bool
	// Channels is the number of debug channels to allocate before the application starts.
	Channels int
}

// DisplayName returns the run configuration name.
func (rc *RunConfiguration) DisplayName() string {
	if rc == nil {
		return ""
	}
	return rc.Name
}

// Runnable returns the process description of the run configuration.
func (rc *RunConfiguration) Runnable() Runnable {
	return Runnable{
		Executable:  rc.Executable,
		Arguments:   append([]string(nil), rc.Arguments...),
		WorkingDir:  rc.WorkingDir,
		Environment: rc.Environment,
		RunAsRoot:   rc.RunAsRoot,
	}
}

// IsChildOf reports whether path lies inside dir.
func IsChildOf(path, dir string) bool {
	if path == "" || dir == "" {
		return false
	}
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
