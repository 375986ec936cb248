package domain

import "regexp"

// DeviceConfig is the declared description of a device.
type DeviceConfig struct {
	ID   string
	Name string
	Type DeviceType
	SSH  SSHParameters
	// FreePorts are the ports that may be handed out to debug channels.
	FreePorts PortList

	// ForwardChannels makes debug channels reachable through a local tunnel.
	ForwardChannels bool
}

// Generator describes a single-source code generator executable.
type Generator struct {
	Name      string
	Command   string
	Arguments []string
	// ErrorPattern matches diagnostic lines on stderr. It must define the
	// named groups "file", "line" and "message"; "severity" is optional.
	ErrorPattern *regexp.Regexp
}

// ExtraCompilerSpec binds a source file to a generator and its output files.
type ExtraCompilerSpec struct {
	Project   string
	Source    string
	Generator string
	// Targets are the files the generator writes, relative to WorkingDir.
	Targets    []string
	WorkingDir string
}
