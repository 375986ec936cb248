// Package settings loads user preferences with viper.
package settings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
	"github.com/orca-repos/orca-sub012/internal/core/ports"
	"github.com/spf13/viper"
	"go.trai.ch/zerr"
)

const (
	// FileName is the settings file looked up in the working directory.
	FileName = "orca-settings.yaml"
	// EnvPrefix prefixes environment overrides, e.g. ORCA_BUILD_ABORT_ON_ERROR.
	EnvPrefix = "ORCA"
)

// Config mirrors the settings file.
type Config struct {
	Build  BuildConfig  `mapstructure:"build"`
	Run    RunConfig    `mapstructure:"run"`
	SSH    SSHConfig    `mapstructure:"ssh"`
	Worker WorkerConfig `mapstructure:"worker"`
}

// BuildConfig holds build manager preferences.
type BuildConfig struct {
	AbortOnError         bool   `mapstructure:"abort_on_error"`
	StopBeforeBuild      string `mapstructure:"stop_before_build"`
	PromptToStop         bool   `mapstructure:"prompt_to_stop"`
	BuildBeforeDeploy    string `mapstructure:"build_before_deploy"`
	DeployBeforeRun      bool   `mapstructure:"deploy_before_run"`
	ClearIssuesOnRebuild bool   `mapstructure:"clear_issues_on_rebuild"`
}

// RunConfig holds launcher preferences.
type RunConfig struct {
	MergeStderrAndStdout bool              `mapstructure:"merge_stderr_and_stdout"`
	UseTerminal          bool              `mapstructure:"use_terminal"`
	Environment          map[string]string `mapstructure:"environment"`
}

// SSHConfig holds remote connection preferences.
type SSHConfig struct {
	SharingTimeout time.Duration `mapstructure:"sharing_timeout"`
	KillTimeout    time.Duration `mapstructure:"kill_timeout"`
}

// WorkerConfig holds run worker watchdog preferences.
type WorkerConfig struct {
	StartTimeout time.Duration `mapstructure:"start_timeout"`
	StopTimeout  time.Duration `mapstructure:"stop_timeout"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Build: BuildConfig{
			AbortOnError:         true,
			StopBeforeBuild:      "none",
			PromptToStop:         true,
			BuildBeforeDeploy:    "whole_project",
			DeployBeforeRun:      true,
			ClearIssuesOnRebuild: true,
		},
		Run: RunConfig{
			Environment: map[string]string{},
		},
		SSH: SSHConfig{
			SharingTimeout: 10 * time.Minute,
			KillTimeout:    5 * time.Second,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("build.abort_on_error", d.Build.AbortOnError)
	v.SetDefault("build.stop_before_build", d.Build.StopBeforeBuild)
	v.SetDefault("build.prompt_to_stop", d.Build.PromptToStop)
	v.SetDefault("build.build_before_deploy", d.Build.BuildBeforeDeploy)
	v.SetDefault("build.deploy_before_run", d.Build.DeployBeforeRun)
	v.SetDefault("build.clear_issues_on_rebuild", d.Build.ClearIssuesOnRebuild)
	v.SetDefault("run.merge_stderr_and_stdout", d.Run.MergeStderrAndStdout)
	v.SetDefault("run.use_terminal", d.Run.UseTerminal)
	v.SetDefault("run.environment", d.Run.Environment)
	v.SetDefault("ssh.sharing_timeout", d.SSH.SharingTimeout)
	v.SetDefault("ssh.kill_timeout", d.SSH.KillTimeout)
	v.SetDefault("worker.start_timeout", d.Worker.StartTimeout)
	v.SetDefault("worker.stop_timeout", d.Worker.StopTimeout)
}

// Validate checks value ranges and converts the configuration into domain settings.
func (c *Config) Validate() (*domain.Settings, error) {
	stop, err := domain.ParseStopBeforeBuild(c.Build.StopBeforeBuild)
	if err != nil {
		return nil, err
	}
	bbd, err := domain.ParseBuildBeforeDeploy(c.Build.BuildBeforeDeploy)
	if err != nil {
		return nil, err
	}

	var errs error
	check := func(key string, d time.Duration) {
		if d < 0 {
			errs = errors.Join(errs, zerr.With(domain.ErrInvalidSetting, key, d.String()))
		}
	}
	check("ssh.sharing_timeout", c.SSH.SharingTimeout)
	check("ssh.kill_timeout", c.SSH.KillTimeout)
	// A remote stop waits this long before reporting a crash.
	if c.SSH.KillTimeout == 0 {
		errs = errors.Join(errs, zerr.With(domain.ErrInvalidSetting, "ssh.kill_timeout", "0s"))
	}
	check("worker.start_timeout", c.Worker.StartTimeout)
	check("worker.stop_timeout", c.Worker.StopTimeout)
	if errs != nil {
		return nil, errs
	}

	env := make(map[string]string, len(c.Run.Environment))
	for k, v := range c.Run.Environment {
		// viper lower-cases map keys; environment names are conventionally upper case.
		env[strings.ToUpper(k)] = v
	}

	return &domain.Settings{
		Build: domain.BuildSettings{
			AbortOnError:         c.Build.AbortOnError,
			StopBeforeBuild:      stop,
			PromptToStop:         c.Build.PromptToStop,
			BuildBeforeDeploy:    bbd,
			DeployBeforeRun:      c.Build.DeployBeforeRun,
			ClearIssuesOnRebuild: c.Build.ClearIssuesOnRebuild,
		},
		Run: domain.RunSettings{
			MergeStderrAndStdout: c.Run.MergeStderrAndStdout,
			UseTerminal:          c.Run.UseTerminal,
			Environment:          env,
		},
		SSH: domain.SSHSettings{
			SharingTimeout: c.SSH.SharingTimeout,
			KillTimeout:    c.SSH.KillTimeout,
		},
		Worker: domain.WorkerSettings{
			StartTimeout: c.Worker.StartTimeout,
			StopTimeout:  c.Worker.StopTimeout,
		},
	}, nil
}

// Loader reads settings from disk and the environment.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new settings loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the settings for the given working directory.
// A missing file is not an error; defaults and ORCA_* variables still apply.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if files := findSettingsFiles(cwd); len(files) > 0 {
		path := files[0]
		for _, shadowed := range files[1:] {
			l.Logger.Warn("settings file " + shadowed + " is ignored because " + path + " takes precedence")
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error()), "path", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}

	s, err := cfg.Validate()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}
	return s, nil
}

// findSettingsFiles returns the existing settings files, the working directory first.
func findSettingsFiles(cwd string) []string {
	candidates := []string{filepath.Join(cwd, FileName)}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "orca", "settings.yaml"))
	}
	var found []string
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			found = append(found, c)
		}
	}
	return found
}
