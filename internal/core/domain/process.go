package domain

import (
	"maps"
	"strings"
)

// Runnable describes a process to launch.
type Runnable struct {
	Executable  string
	Arguments   []string
	WorkingDir  string
	Environment map[string]string
	RunAsRoot   bool
	// Input is written to the standard input of the process, which is then closed.
	Input []byte
}

// CommandLine renders the executable and its arguments for display.
func (r Runnable) CommandLine() string {
	parts := make([]string, 0, len(r.Arguments)+1)
	parts = append(parts, quoteArg(r.Executable))
	for _, a := range r.Arguments {
		parts = append(parts, quoteArg(a))
	}
	return strings.Join(parts, " ")
}

// WithEnvironment returns a copy of r whose environment is overlaid by env.
func (r Runnable) WithEnvironment(env map[string]string) Runnable {
	merged := make(map[string]string, len(r.Environment)+len(env))
	maps.Copy(merged, env)
	maps.Copy(merged, r.Environment)
	r.Environment = merged
	return r
}

func quoteArg(s string) string {
	if s == "" {
		return `""`
	}
	if strings.ContainsAny(s, " \t\"'") {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}

// ExitStatus distinguishes a regular exit from a crash.
type ExitStatus int

const (
	// NormalExit means the process exited on its own.
	NormalExit ExitStatus = iota
	// CrashExit means the process was killed or crashed.
	CrashExit
)

// String implements fmt.Stringer.
func (s ExitStatus) String() string {
	if s == CrashExit {
		return "crash"
	}
	return "normal"
}

// ProcessError classifies process failures.
type ProcessError int

const (
	// FailedToStart means the executable is missing or not permitted.
	FailedToStart ProcessError = iota
	// Crashed means the process terminated abnormally.
	Crashed
	// Timedout means a wait on the process timed out.
	Timedout
	// WriteError means writing to the process failed.
	WriteError
	// ReadError means reading from the process failed.
	ReadError
	// UnknownError is any other failure.
	UnknownError
)

// String implements fmt.Stringer.
func (e ProcessError) String() string {
	switch e {
	case FailedToStart:
		return "failed to start"
	case Crashed:
		return "crashed"
	case Timedout:
		return "timed out"
	case WriteError:
		return "write error"
	case ReadError:
		return "read error"
	default:
		return "unknown error"
	}
}

// ProcessResult is the outcome of a finished process.
type ProcessResult struct {
	ExitCode   int
	ExitStatus ExitStatus
}

// Success reports whether the process exited normally with code zero.
func (r ProcessResult) Success() bool {
	return r.ExitStatus == NormalExit && r.ExitCode == 0
}
