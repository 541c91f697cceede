package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for theme API inputs.
const (
	maxNameLen        = 120
	maxDescriptionLen = 1_000
	maxPathLen        = 200
	maxPathDepth      = 6
)

// validateThemeInput checks create-theme form inputs and returns the
// first error found.
func validateThemeInput(name, description string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Theme name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Theme name is too long (max 120 characters)."
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "Description is too long (max 1,000 characters)."
	}
	return ""
}

// validateSettingPath checks a dotted settings path.
func validateSettingPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "Setting path is required."
	}
	if utf8.RuneCountInString(path) > maxPathLen {
		return "Setting path is too long (max 200 characters)."
	}
	segments := strings.Split(path, ".")
	if len(segments) > maxPathDepth {
		return "Setting path is too deep (max 6 segments)."
	}
	for _, seg := range segments {
		if seg == "" {
			return "Setting path has an empty segment."
		}
	}
	return ""
}
