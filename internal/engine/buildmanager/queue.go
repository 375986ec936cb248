package buildmanager

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"go.trai.ch/zerr"
)

// BuildProjects queues the build lists of projects. It returns the number of
// lists queued.
func (m *Manager) BuildProjects(ctx context.Context, projects []*domain.Project, sel domain.ConfigSelection) (int, error) {
	return m.queueKinds(ctx, projects, []domain.StepListKind{domain.StepListBuild}, sel)
}

// CleanProjects queues the clean lists of projects.
func (m *Manager) CleanProjects(ctx context.Context, projects []*domain.Project, sel domain.ConfigSelection) (int, error) {
	return m.queueKinds(ctx, projects, []domain.StepListKind{domain.StepListClean}, sel)
}

// RebuildProjects queues the clean and then the build lists of projects.
func (m *Manager) RebuildProjects(ctx context.Context, projects []*domain.Project, sel domain.ConfigSelection) (int, error) {
	return m.queueKinds(ctx, projects, []domain.StepListKind{domain.StepListClean, domain.StepListBuild}, sel)
}

// DeployProjects queues the deploy lists of projects, preceded by their build
// lists unless building before deploying is switched off.
func (m *Manager) DeployProjects(ctx context.Context, projects []*domain.Project) (int, error) {
	var kinds []domain.StepListKind
	if m.settings.BuildBeforeDeploy != domain.BuildBeforeDeployOff {
		kinds = append(kinds, domain.StepListBuild)
	}
	kinds = append(kinds, domain.StepListDeploy)
	return m.queueKinds(ctx, projects, kinds, domain.ConfigSelectionActive)
}

// BuildProjectWithDependencies builds p after the projects it depends on.
func (m *Manager) BuildProjectWithDependencies(ctx context.Context, p *domain.Project, sel domain.ConfigSelection) (int, error) {
	projects, err := m.DependencyOrder([]*domain.Project{p})
	if err != nil {
		return -1, err
	}
	return m.BuildProjects(ctx, projects, sel)
}

// CleanProjectWithDependencies cleans p and the projects it depends on.
func (m *Manager) CleanProjectWithDependencies(ctx context.Context, p *domain.Project, sel domain.ConfigSelection) (int, error) {
	projects, err := m.DependencyOrder([]*domain.Project{p})
	if err != nil {
		return -1, err
	}
	return m.CleanProjects(ctx, projects, sel)
}

// RebuildProjectWithDependencies rebuilds p and the projects it depends on.
func (m *Manager) RebuildProjectWithDependencies(ctx context.Context, p *domain.Project, sel domain.ConfigSelection) (int, error) {
	projects, err := m.DependencyOrder([]*domain.Project{p})
	if err != nil {
		return -1, err
	}
	return m.RebuildProjects(ctx, projects, sel)
}

// DependencyOrder expands projects with their transitive dependencies,
// dependencies first.
func (m *Manager) DependencyOrder(projects []*domain.Project) ([]*domain.Project, error) {
	if m.workspace == nil {
		return projects, nil
	}
	if err := m.workspace.Validate(); err != nil {
		return nil, err
	}
	return m.workspace.ProjectsOrder(projects), nil
}

// PotentiallyBuildForRunConfig queues whatever has to be built and deployed
// before rc can be run.
func (m *Manager) PotentiallyBuildForRunConfig(ctx context.Context, rc *domain.RunConfiguration) domain.BuildForRunConfigStatus {
	var kinds []domain.StepListKind
	if m.settings.DeployBeforeRun {
		if !m.IsBuilding() && m.settings.BuildBeforeDeploy != domain.BuildBeforeDeployOff {
			kinds = append(kinds, domain.StepListBuild)
		}
		if !m.IsDeploying() {
			kinds = append(kinds, domain.StepListDeploy)
		}
	}

	project := rc.Target.Project
	projects := []*domain.Project{project}
	if m.workspace != nil {
		projects = m.workspace.ProjectOrder(project)
	}

	n := m.enqueue(ctx, projects, kinds, domain.ConfigSelectionActive, rc)
	switch {
	case n < 0:
		return domain.BuildFailed
	case n > 0 || m.IsBuildingProject(project):
		return domain.Building
	default:
		return domain.NotBuilding
	}
}

func (m *Manager) queueKinds(ctx context.Context, projects []*domain.Project, kinds []domain.StepListKind, sel domain.ConfigSelection) (int, error) {
	n := m.enqueue(ctx, projects, kinds, sel, nil)
	if n < 0 {
		return n, zerr.With(domain.ErrBuildQueueFailed, "kinds", fmt.Sprint(kinds))
	}
	return n, nil
}

// queue resolves the step lists of kinds for projects and queues them.
// It returns -1 on failure, 0 if nothing had to be queued and otherwise the
// number of lists queued.
func (m *Manager) enqueue(
	ctx context.Context,
	projects []*domain.Project,
	kinds []domain.StepListKind,
	sel domain.ConfigSelection,
	forRunConfig *domain.RunConfiguration,
) int {
	if slices.Contains(kinds, domain.StepListBuild) && !m.stopBeforeBuild(ctx, projects, sel, forRunConfig) {
		return -1
	}

	var preamble []string
	for _, p := range projects {
		if p != nil && p.NeedsConfiguration {
			preamble = append(preamble, fmt.Sprintf("The project %s is not configured, skipping it.\n", p.DisplayName()))
		}
	}

	var lists []*ports.BuildStepList
	for _, kind := range kinds {
		for _, p := range projects {
			if p == nil || p.NeedsConfiguration {
				continue
			}
			for _, t := range targetsForSelection(p, sel) {
				if kind == domain.StepListDeploy {
					if t.ActiveDeployConfiguration == nil {
						continue
					}
					if l := m.lists.StepList(t.ActiveDeployConfiguration, kind); !l.IsEmpty() {
						lists = append(lists, l)
					}
					continue
				}
				for _, c := range configsForSelection(t, sel) {
					if l := m.lists.StepList(c, kind); !l.IsEmpty() {
						lists = append(lists, l)
					}
				}
			}
		}
	}

	if len(lists) == 0 {
		return 0
	}
	if !m.BuildLists(ctx, lists, preamble) {
		return -1
	}
	return len(lists)
}

func targetsForSelection(p *domain.Project, sel domain.ConfigSelection) []*domain.Target {
	if sel == domain.ConfigSelectionAll {
		return p.Targets
	}
	if p.ActiveTarget == nil {
		return nil
	}
	return []*domain.Target{p.ActiveTarget}
}

func configsForSelection(t *domain.Target, sel domain.ConfigSelection) []*domain.ProjectConfiguration {
	if sel == domain.ConfigSelectionAll {
		return t.BuildConfigurations
	}
	if t.ActiveBuildConfiguration == nil {
		return nil
	}
	return []*domain.ProjectConfiguration{t.ActiveBuildConfiguration}
}

// stopBeforeBuild stops the running applications selected by the
// stop-before-build setting. It returns false if waiting for them was canceled.
func (m *Manager) stopBeforeBuild(
	ctx context.Context,
	projects []*domain.Project,
	sel domain.ConfigSelection,
	forRunConfig *domain.RunConfiguration,
) bool {
	mode := m.settings.StopBeforeBuild
	if mode == domain.StopNone || m.runs == nil {
		return true
	}
	if mode == domain.StopSameApp && forRunConfig == nil {
		mode = domain.StopSameBuildDir
	}

	var toStop []ports.RunningApplication
	for _, app := range m.runs.RunningApplications() {
		if app.IsRunning() && isStoppable(app, mode, projects, sel, forRunConfig) {
			toStop = append(toStop, app)
		}
	}
	if len(toStop) == 0 {
		return true
	}

	if m.settings.PromptToStop && m.prompter != nil {
		names := make([]string, 0, len(toStop))
		for _, app := range toStop {
			names = append(names, app.DisplayName())
		}
		if !m.prompter.ConfirmStop("Stop Applications", "Stop these applications before building?", names) {
			return true
		}
	}

	for _, app := range toStop {
		app.InitiateStop()
	}
	for _, app := range toStop {
		if err := app.WaitStopped(ctx); err != nil {
			return false
		}
	}
	return true
}

func isStoppable(
	app ports.RunningApplication,
	mode domain.StopBeforeBuild,
	projects []*domain.Project,
	sel domain.ConfigSelection,
	forRunConfig *domain.RunConfiguration,
) bool {
	switch mode {
	case domain.StopAll:
		return true
	case domain.StopSameProject:
		return slices.Contains(projects, app.Project())
	case domain.StopSameBuildDir:
		if !app.IsDesktop() || app.RunConfiguration() == nil {
			return false
		}
		executable := app.RunConfiguration().Executable
		for _, p := range projects {
			for _, t := range targetsForSelection(p, sel) {
				for _, c := range configsForSelection(t, sel) {
					if c.BuildDir != "" && domain.IsChildOf(executable, c.BuildDir) {
						return true
					}
				}
			}
		}
		return false
	case domain.StopSameApp:
		rc := app.RunConfiguration()
		return rc != nil && filepath.Clean(rc.Executable) == filepath.Clean(forRunConfig.Executable)
	default:
		return false
	}
}
