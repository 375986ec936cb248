package domain

import "strconv"

// TaskCategory groups diagnostics by their origin.
type TaskCategory string

const (
	// CategoryCompile holds compiler diagnostics.
	CategoryCompile TaskCategory = "compile"
	// CategoryBuildSystem holds diagnostics of the build system itself.
	CategoryBuildSystem TaskCategory = "buildsystem"
	// CategoryDeployment holds deployment diagnostics.
	CategoryDeployment TaskCategory = "deployment"
	// CategoryAutotest holds test runner diagnostics.
	CategoryAutotest TaskCategory = "autotest"
	// CategoryExtraCompiler holds code generator diagnostics.
	CategoryExtraCompiler TaskCategory = "extracompiler"
)

// RebuildCategories are the categories cleared before a fresh build queue starts.
var RebuildCategories = []TaskCategory{
	CategoryCompile,
	CategoryBuildSystem,
	CategoryDeployment,
	CategoryAutotest,
}

// ErrorCountCategories are the categories counted by the build error summary.
var ErrorCountCategories = []TaskCategory{
	CategoryBuildSystem,
	CategoryCompile,
	CategoryDeployment,
}

// TaskSeverity is the severity of a diagnostic.
type TaskSeverity int

const (
	// SeverityUnknown is used for diagnostics without a severity.
	SeverityUnknown TaskSeverity = iota
	// SeverityError marks an error.
	SeverityError
	// SeverityWarning marks a warning.
	SeverityWarning
)

// String implements fmt.Stringer.
func (s TaskSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Task is a structured diagnostic emitted by a running step.
type Task struct {
	Category    TaskCategory
	Severity    TaskSeverity
	Description string
	File        string
	// Line is 1-based. Zero means the task is not bound to a line.
	Line int
}

// Location renders file:line, or just the file when no line is known.
func (t Task) Location() string {
	if t.Line <= 0 {
		return t.File
	}
	return t.File + ":" + strconv.Itoa(t.Line)
}
