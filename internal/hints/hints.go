// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForInputNotFound returns a hint for a missing Markdown input file.
// The default input names are fixed and relative to the working directory,
// so the most common cause is running the tool from the wrong directory.
func ForInputNotFound(path string) string {
	if filepath.IsAbs(path) {
		return format("check the path or pass another file with --input")
	}
	return format("run from the directory containing " + filepath.Base(path) + " or pass --input")
}

// ForConfigNotFound returns a hint for an explicit --config path that does not exist.
func ForConfigNotFound(path string) string {
	return format("create " + path + " or omit --config to use built-in defaults")
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnknownProfile lists the available profiles.
func ForUnknownProfile(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available styles: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
