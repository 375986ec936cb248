package config

import "time"

// FileName is the name of the workspace file.
const FileName = "orca.yaml"

// Workspace represents the structure of the orca.yaml file.
type Workspace struct {
	Version        string                   `yaml:"version"`
	Kits           map[string]*KitDTO       `yaml:"kits"`
	Devices        map[string]*DeviceDTO    `yaml:"devices"`
	Generators     map[string]*GeneratorDTO `yaml:"generators"`
	Projects       []*ProjectDTO            `yaml:"projects"`
	ExtraCompilers []*ExtraCompilerDTO      `yaml:"extraCompilers"`
}

// KitDTO represents a kit definition.
type KitDTO struct {
	Device string   `yaml:"device"`
	Issues []string `yaml:"issues"`
}

// DeviceDTO represents a device definition.
type DeviceDTO struct {
	Name      string        `yaml:"name"`
	Type      string        `yaml:"type"`
	Host      string        `yaml:"host"`
	Port      int           `yaml:"port"`
	User      string        `yaml:"user"`
	KeyFile   string        `yaml:"keyFile"`
	Timeout   time.Duration `yaml:"timeout"`
	FreePorts string        `yaml:"freePorts"`

	// ForwardChannels tunnels debug channels through the SSH connection.
	ForwardChannels bool `yaml:"forwardChannels"`
}

// GeneratorDTO represents a code generator definition.
type GeneratorDTO struct {
	Command      string   `yaml:"command"`
	Args         []string `yaml:"args"`
	ErrorPattern string   `yaml:"errorPattern"`
}

// ProjectDTO represents a project definition.
type ProjectDTO struct {
	Name               string       `yaml:"name"`
	Dir                string       `yaml:"dir"`
	DependsOn          []string     `yaml:"dependsOn"`
	NeedsConfiguration bool         `yaml:"needsConfiguration"`
	ActiveTarget       string       `yaml:"activeTarget"`
	Targets            []*TargetDTO `yaml:"targets"`
}

// TargetDTO represents a target definition.
type TargetDTO struct {
	Name                     string                `yaml:"name"`
	Kit                      string                `yaml:"kit"`
	ActiveBuildConfiguration string                `yaml:"activeBuildConfiguration"`
	BuildConfigurations      []*BuildConfigDTO     `yaml:"buildConfigurations"`
	Deploy                   *DeployConfigDTO      `yaml:"deploy"`
	ActiveRunConfiguration   string                `yaml:"activeRunConfiguration"`
	RunConfigurations        []*RunConfigurationDTO `yaml:"runConfigurations"`
}

// BuildConfigDTO represents a build configuration.
type BuildConfigDTO struct {
	Name       string     `yaml:"name"`
	BuildDir   string     `yaml:"buildDir"`
	BuildSteps []*StepDTO `yaml:"buildSteps"`
	CleanSteps []*StepDTO `yaml:"cleanSteps"`
}

// DeployConfigDTO represents the deploy configuration of a target.
type DeployConfigDTO struct {
	Name  string     `yaml:"name"`
	Steps []*StepDTO `yaml:"steps"`
}

// StepDTO represents a command step.
type StepDTO struct {
	Name        string            `yaml:"name"`
	Cmd         []string          `yaml:"cmd"`
	WorkingDir  string            `yaml:"workingDir"`
	Environment map[string]string `yaml:"environment"`
	Enabled     *bool             `yaml:"enabled"`
	Parser      string            `yaml:"parser"`
}

// RunConfigurationDTO represents a run configuration.
type RunConfigurationDTO struct {
	Name        string            `yaml:"name"`
	Executable  string            `yaml:"executable"`
	Args        []string          `yaml:"args"`
	WorkingDir  string            `yaml:"workingDir"`
	Environment map[string]string `yaml:"environment"`
	RunAsRoot   bool              `yaml:"runAsRoot"`
	Channels    int               `yaml:"channels"`
}

// ExtraCompilerDTO binds a source file to a generator.
type ExtraCompilerDTO struct {
	Project    string   `yaml:"project"`
	Source     string   `yaml:"source"`
	Generator  string   `yaml:"generator"`
	Targets    []string `yaml:"targets"`
	WorkingDir string   `yaml:"workingDir"`
}
