// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when known, the per-user config directory.
func ForConfigNotFound(userConfigDir string) string {
	hint := "use --config /path/to/file.yaml"
	if userConfigDir != "" {
		hint += " or create a .yaml or .toml file in " + userConfigDir
	}
	return format(hint)
}

// ForTemplateSetNotFound lists the available sets and the file alternative.
func ForTemplateSetNotFound(available []string) string {
	var hints []string
	if len(available) > 0 {
		hints = append(hints, "available: "+strings.Join(available, ", "))
	}
	hints = append(hints, "or pass a template file path to --template")
	return formatHints(hints)
}

// ForUnknownVariable points at the command listing the paths of a data file.
func ForUnknownVariable() string {
	return format("run 'cv2docx vars <data>' to list the available paths")
}

// ForDataSyntax returns a hint for data files that fail to decode.
func ForDataSyntax() string {
	return format("JSON and YAML data need a mapping at the top level; check quoting of values containing ':'")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
