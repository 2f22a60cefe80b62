package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath validates a user-supplied output path for safety.
// It rejects paths that could not be a reasonable render target.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - Maximum length of 500 characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	if len(path) > 500 {
		return New(ErrCodeInvalidPath, "output path too long (max 500 characters)")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains control characters")
		}
	}

	if strings.Contains(path, "\x00") {
		return New(ErrCodeInvalidPath, "output path contains null byte")
	}

	return nil
}
