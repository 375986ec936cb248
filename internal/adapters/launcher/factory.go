package launcher

import (
	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
)

var _ ports.LauncherFactory = (*Factory)(nil)

// Factory creates launchers sharing the same settings and options.
type Factory struct {
	settings domain.RunSettings
	opts     []Option
}

// NewFactory creates a Factory.
func NewFactory(settings domain.RunSettings, opts ...Option) *Factory {
	return &Factory{settings: settings, opts: opts}
}

// NewLauncher returns a new idle launcher.
func (f *Factory) NewLauncher() ports.Launcher {
	return New(f.settings, f.opts...)
}

// Separated returns a factory whose launchers keep stdout and stderr apart
// and never allocate a terminal.
func (f *Factory) Separated() *Factory {
	settings := f.settings
	settings.MergeStderrAndStdout = false
	settings.UseTerminal = false
	return &Factory{settings: settings, opts: f.opts}
}
