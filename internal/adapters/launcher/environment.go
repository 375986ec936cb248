package launcher

import (
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
)

// resolveEnvironment merges the system environment, the global overlay and the
// environment of the runnable, later layers winning.
func resolveEnvironment(sysEnv []string, overlay, runnableEnv map[string]string) map[string]string {
	envMap := make(map[string]string, len(sysEnv)+len(overlay)+len(runnableEnv))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok && k != "" {
			envMap[k] = v
		}
	}
	for k, v := range overlay {
		envMap[k] = v
	}
	for k, v := range runnableEnv {
		envMap[k] = v
	}
	return envMap
}

func envList(envMap map[string]string) []string {
	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	result := make([]string, 0, len(envMap))
	for _, k := range keys {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by PATH in env.
func lookPath(file string, env map[string]string) (string, error) {
	if strings.ContainsRune(file, filepath.Separator) {
		if err := findExecutable(file); err != nil {
			return "", err
		}
		return file, nil
	}

	path := env["PATH"]
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
