package errors

import (
	"strings"
	"unicode"
)

// maxRobotNameLength bounds robot names, which end up inside output filenames.
const maxRobotNameLength = 128

// ValidateRobotName validates a robot name for safety.
// The name is embedded in report filenames (ik_solution_NAME.tex), so it
// must not be usable for path traversal.
//
// Validation rules:
//   - No empty names
//   - Maximum length of 128 characters
//   - No control characters or null bytes
//   - No path separators or traversal sequences
func ValidateRobotName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidRobot, "robot name cannot be empty")
	}

	if len(name) > maxRobotNameLength {
		return New(ErrCodeInvalidRobot, "robot name too long (max %d characters)", maxRobotNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidRobot, "robot name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidRobot, "robot name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateFilename validates an output filename (such as the default report
// name). It must be a simple basename without path components.
func ValidateFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidPath, "filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidPath, "filename cannot be a hidden file")
	}

	for _, r := range filename {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "filename contains invalid characters")
		}
	}

	return nil
}

// ValidateSymbol validates a kinematic symbol name (for example "th_1" or
// "d_4"). Symbols are rendered into LaTeX math mode, so dollar signs and
// line breaks are rejected.
func ValidateSymbol(symbol string) error {
	if strings.TrimSpace(symbol) == "" {
		return New(ErrCodeInvalidInput, "symbol cannot be empty")
	}
	if strings.ContainsAny(symbol, "$\n\r") {
		return New(ErrCodeInvalidInput, "symbol %q contains invalid characters", symbol)
	}
	return nil
}
