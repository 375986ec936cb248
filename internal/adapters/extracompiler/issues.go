package extracompiler

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
)

// ParseIssues turns the standard error of the generator into tasks using the
// error pattern of the generator. Lines that do not match are ignored.
func (c *ProcessExtraCompiler) ParseIssues(stderr []byte) []domain.Task {
	re := c.generator.ErrorPattern
	if re == nil {
		return nil
	}
	fileIdx := re.SubexpIndex("file")
	lineIdx := re.SubexpIndex("line")
	msgIdx := re.SubexpIndex("message")
	sevIdx := re.SubexpIndex("severity")

	var tasks []domain.Task
	scanner := bufio.NewScanner(bytes.NewReader(stderr))
	for scanner.Scan() {
		m := re.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		task := domain.Task{
			Category: domain.CategoryExtraCompiler,
			Severity: domain.SeverityError,
		}
		if msgIdx >= 0 {
			task.Description = strings.TrimSpace(m[msgIdx])
		}
		if fileIdx >= 0 && m[fileIdx] != "" {
			task.File = m[fileIdx]
			if !filepath.IsAbs(task.File) && c.workingDir != "" {
				task.File = filepath.Join(c.workingDir, task.File)
			}
		}
		if lineIdx >= 0 {
			task.Line, _ = strconv.Atoi(m[lineIdx])
		}
		if sevIdx >= 0 && strings.EqualFold(m[sevIdx], "warning") {
			task.Severity = domain.SeverityWarning
		}
		tasks = append(tasks, task)
	}
	return tasks
}
