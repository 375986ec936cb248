package ports

import "github.com/orca-repos/orca-sub012/internal/core/domain"

//go:generate mockgen -source=sinks.go -destination=mocks/mock_sinks.go -package=mocks

// OutputSink receives text for the build and run output window.
type OutputSink interface {
	// Append writes text with the given format. Text is expected to carry its own line breaks.
	Append(text string, format domain.OutputFormat)
}

// TaskSink collects diagnostics emitted by running steps.
type TaskSink interface {
	// AddTask records a diagnostic.
	AddTask(task domain.Task)
	// ClearTasks removes all diagnostics of a category.
	ClearTasks(category domain.TaskCategory)
	// ErrorTaskCount counts error diagnostics in the given categories.
	ErrorTaskCount(categories ...domain.TaskCategory) int
	// TaskCount counts all diagnostics in the given categories.
	TaskCount(categories ...domain.TaskCategory) int
}
