// Package config provides the workspace loader for orca.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.WorkspaceLoader = (*Loader)(nil)

// Loader implements ports.WorkspaceLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// DiscoverRoot walks up from cwd to find the directory containing orca.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	path, err := findWorkspaceFile(cwd)
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}

func findWorkspaceFile(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// Load reads the workspace file governing cwd.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	path, err := findWorkspaceFile(cwd)
	if err != nil {
		return nil, err
	}

	var dto Workspace
	if err := readAndUnmarshalYAML(path, &dto); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	root := filepath.Dir(path)
	ws := domain.NewWorkspace(root)
	ws.Path = path

	if err := l.loadDevices(ws, dto.Devices); err != nil {
		return nil, err
	}
	if err := l.loadGenerators(ws, dto.Generators); err != nil {
		return nil, err
	}
	kits, err := l.loadKits(ws, dto.Kits)
	if err != nil {
		return nil, err
	}
	for _, p := range dto.Projects {
		project, err := l.loadProject(root, p, kits)
		if err != nil {
			return nil, err
		}
		if err := ws.AddProject(project); err != nil {
			return nil, err
		}
	}
	if err := ws.Validate(); err != nil {
		return nil, err
	}
	if err := l.loadExtraCompilers(ws, dto.ExtraCompilers); err != nil {
		return nil, err
	}

	return ws, nil
}

func (l *Loader) loadDevices(ws *domain.Workspace, devices map[string]*DeviceDTO) error {
	for _, id := range slices.Sorted(maps.Keys(devices)) {
		d := devices[id]
		if d == nil {
			continue
		}
		cfg := &domain.DeviceConfig{
			ID:   id,
			Name: d.Name,
			SSH: domain.SSHParameters{
				Host:    d.Host,
				Port:    d.Port,
				User:    d.User,
				KeyFile: expandHome(d.KeyFile),
				Timeout: d.Timeout,
			},
		}
		if cfg.Name == "" {
			cfg.Name = id
		}
		switch strings.ToLower(d.Type) {
		case "", "desktop":
			cfg.Type = domain.DesktopDevice
		case "ssh":
			cfg.Type = domain.SSHDevice
			if d.Host == "" {
				return zerr.With(zerr.With(domain.ErrInvalidDevice, "reason", "missing host"), "device", id)
			}
		default:
			return zerr.With(zerr.With(domain.ErrInvalidDevice, "type", d.Type), "device", id)
		}
		if d.FreePorts != "" {
			ports, err := domain.ParsePortList(d.FreePorts)
			if err != nil {
				return zerr.With(err, "device", id)
			}
			cfg.FreePorts = ports
		}
		cfg.ForwardChannels = d.ForwardChannels
		ws.Devices[id] = cfg
	}
	return nil
}

func (l *Loader) loadGenerators(ws *domain.Workspace, generators map[string]*GeneratorDTO) error {
	for name, g := range generators {
		if g == nil {
			continue
		}
		gen := &domain.Generator{Name: name, Command: g.Command, Arguments: g.Args}
		if g.ErrorPattern != "" {
			re, err := regexp.Compile(g.ErrorPattern)
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrInvalidGenerator.Error()), "generator", name)
			}
			gen.ErrorPattern = re
		}
		ws.Generators[name] = gen
	}
	return nil
}

func (l *Loader) loadKits(ws *domain.Workspace, kits map[string]*KitDTO) (map[string]*domain.Kit, error) {
	out := make(map[string]*domain.Kit, len(kits))
	for name, k := range kits {
		kit := &domain.Kit{Name: name, DeviceID: domain.DesktopDeviceID}
		if k != nil {
			kit.Issues = k.Issues
			if k.Device != "" {
				kit.DeviceID = k.Device
			}
		}
		if _, ok := ws.Devices[kit.DeviceID]; !ok && kit.DeviceID != domain.DesktopDeviceID {
			err := zerr.With(domain.ErrUnknownDevice, "device", kit.DeviceID)
			return nil, zerr.With(err, "kit", name)
		}
		out[name] = kit
	}
	return out, nil
}

func (l *Loader) loadProject(root string, dto *ProjectDTO, kits map[string]*domain.Kit) (*domain.Project, error) {
	if dto == nil || !validNameRegex.MatchString(dto.Name) {
		name := ""
		if dto != nil {
			name = dto.Name
		}
		return nil, zerr.With(domain.ErrInvalidProjectName, "project_name", name)
	}

	p := &domain.Project{
		Name:               dto.Name,
		Dir:                resolvePath(root, dto.Dir),
		NeedsConfiguration: dto.NeedsConfiguration,
		Dependencies:       dto.DependsOn,
	}

	for _, t := range dto.Targets {
		target, err := l.loadTarget(p, t, kits)
		if err != nil {
			return nil, zerr.With(err, "project", p.Name)
		}
		p.Targets = append(p.Targets, target)
		if target.Name == dto.ActiveTarget {
			p.ActiveTarget = target
		}
	}
	if p.ActiveTarget == nil && len(p.Targets) > 0 {
		if dto.ActiveTarget != "" {
			l.Logger.Warn(fmt.Sprintf("active target %q of project %s does not exist, using %s",
				dto.ActiveTarget, p.Name, p.Targets[0].Name))
		}
		p.ActiveTarget = p.Targets[0]
	}
	return p, nil
}

func (l *Loader) loadTarget(p *domain.Project, dto *TargetDTO, kits map[string]*domain.Kit) (*domain.Target, error) {
	kit, ok := kits[dto.Kit]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownKit, "kit", dto.Kit)
	}

	t := &domain.Target{Name: dto.Name, Project: p, Kit: kit}
	if t.Name == "" {
		t.Name = kit.Name
	}

	for _, bc := range dto.BuildConfigurations {
		cfg := &domain.ProjectConfiguration{
			ID:          p.Name + "." + t.Name + "." + bc.Name,
			DisplayName: bc.Name,
			Kind:        domain.BuildConfigurationKind,
			Target:      t,
			BuildDir:    resolvePath(p.Dir, bc.BuildDir),
			Steps: map[domain.StepListKind][]domain.StepSpec{
				domain.StepListBuild: toStepSpecs(p.Dir, bc.BuildSteps),
				domain.StepListClean: toStepSpecs(p.Dir, bc.CleanSteps),
			},
		}
		t.BuildConfigurations = append(t.BuildConfigurations, cfg)
		if bc.Name == dto.ActiveBuildConfiguration {
			t.ActiveBuildConfiguration = cfg
		}
	}
	if t.ActiveBuildConfiguration == nil && len(t.BuildConfigurations) > 0 {
		t.ActiveBuildConfiguration = t.BuildConfigurations[0]
	}

	if dto.Deploy != nil {
		name := dto.Deploy.Name
		if name == "" {
			name = "deploy"
		}
		t.ActiveDeployConfiguration = &domain.ProjectConfiguration{
			ID:          p.Name + "." + t.Name + "." + name,
			DisplayName: name,
			Kind:        domain.DeployConfigurationKind,
			Target:      t,
			Steps: map[domain.StepListKind][]domain.StepSpec{
				domain.StepListDeploy: toStepSpecs(p.Dir, dto.Deploy.Steps),
			},
		}
	}

	for _, rc := range dto.RunConfigurations {
		run := &domain.RunConfiguration{
			Name:        rc.Name,
			Target:      t,
			Executable:  rc.Executable,
			Arguments:   rc.Args,
			WorkingDir:  rc.WorkingDir,
			Environment: rc.Environment,
			RunAsRoot:   rc.RunAsRoot,
			Channels:    rc.Channels,
		}
		// Local executables are resolved against the project; remote paths are kept.
		if kit.DeviceID == domain.DesktopDeviceID {
			if strings.ContainsRune(run.Executable, filepath.Separator) {
				run.Executable = resolvePath(p.Dir, run.Executable)
			}
			run.WorkingDir = resolvePath(p.Dir, run.WorkingDir)
		}
		t.RunConfigurations = append(t.RunConfigurations, run)
		if rc.Name == dto.ActiveRunConfiguration {
			t.ActiveRunConfiguration = run
		}
	}
	if t.ActiveRunConfiguration == nil && len(t.RunConfigurations) > 0 {
		t.ActiveRunConfiguration = t.RunConfigurations[0]
	}

	return t, nil
}

func toStepSpecs(dir string, steps []*StepDTO) []domain.StepSpec {
	specs := make([]domain.StepSpec, 0, len(steps))
	for _, s := range steps {
		if s == nil {
			continue
		}
		spec := domain.StepSpec{
			Name:        s.Name,
			WorkingDir:  resolvePath(dir, s.WorkingDir),
			Environment: s.Environment,
			Enabled:     s.Enabled == nil || *s.Enabled,
			Parser:      s.Parser,
		}
		if len(s.Cmd) > 0 {
			spec.Command = s.Cmd[0]
			spec.Arguments = s.Cmd[1:]
		}
		if spec.Name == "" {
			spec.Name = spec.Command
		}
		specs = append(specs, spec)
	}
	return specs
}

func (l *Loader) loadExtraCompilers(ws *domain.Workspace, dtos []*ExtraCompilerDTO) error {
	for _, ec := range dtos {
		if ec == nil {
			continue
		}
		if _, ok := ws.Generators[ec.Generator]; !ok {
			return zerr.With(domain.ErrGeneratorNotFound, "generator", ec.Generator)
		}
		base := ws.Root
		if ec.Project != "" {
			p, ok := ws.Project(ec.Project)
			if !ok {
				return zerr.With(domain.ErrProjectNotFound, "project", ec.Project)
			}
			base = p.Dir
		}
		ws.ExtraCompilers = append(ws.ExtraCompilers, &domain.ExtraCompilerSpec{
			Project:    ec.Project,
			Source:     resolvePath(base, ec.Source),
			Generator:  ec.Generator,
			Targets:    ec.Targets,
			WorkingDir: resolvePath(base, ec.WorkingDir),
		})
	}
	return nil
}

func resolvePath(base, p string) string {
	if p == "" {
		return filepath.Clean(base)
	}
	p = expandHome(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, p))
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by the loader
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
