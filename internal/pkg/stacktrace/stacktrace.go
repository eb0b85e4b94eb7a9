package stacktrace

import "strings"

// InternalPaths extracts the "internal/<pkg>/<file>.go:<line>" locations from
// a raw debug.Stack() dump, keeping only frames that belong to this module.
func InternalPaths(stack []byte) []string {
	var paths []string
	for _, line := range strings.Split(string(stack), "\n") {
		line = strings.TrimSpace(line)

		idx := strings.Index(line, "/internal/")
		if idx == -1 || !strings.Contains(line, ".go:") {
			continue
		}

		loc := line[idx+1:]
		if sp := strings.IndexByte(loc, ' '); sp != -1 {
			loc = loc[:sp]
		}

		paths = append(paths, loc)
	}

	return paths
}
