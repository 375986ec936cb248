// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/orca-repos/orca-sub012/internal/adapters/config"
	_ "github.com/orca-repos/orca-sub012/internal/adapters/device"
	_ "github.com/orca-repos/orca-sub012/internal/adapters/extracompiler"
	_ "github.com/orca-repos/orca-sub012/internal/adapters/launcher"
	_ "github.com/orca-repos/orca-sub012/internal/adapters/logger"
	_ "github.com/orca-repos/orca-sub012/internal/adapters/outputpane"
	_ "github.com/orca-repos/orca-sub012/internal/adapters/prompt"
	_ "github.com/orca-repos/orca-sub012/internal/adapters/settings"
	_ "github.com/orca-repos/orca-sub012/internal/adapters/ssh"
	_ "github.com/orca-repos/orca-sub012/internal/adapters/steps"
	_ "github.com/orca-repos/orca-sub012/internal/adapters/tasks"
	_ "github.com/orca-repos/orca-sub012/internal/adapters/telemetry"
	_ "github.com/orca-repos/orca-sub012/internal/adapters/telemetry/progrock"
	_ "github.com/orca-repos/orca-sub012/internal/adapters/watcher"
	_ "github.com/orca-repos/orca-sub012/internal/adapters/windebug"
	// Register app and engine nodes.
	_ "github.com/orca-repos/orca-sub012/internal/app"
	_ "github.com/orca-repos/orca-sub012/internal/engine/buildmanager"
	_ "github.com/orca-repos/orca-sub012/internal/engine/runcontrol"
)
