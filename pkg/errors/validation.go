package errors

import (
	"strings"
	"unicode"
)

// maxFilenameLength bounds generated output names (variant plus suffix).
const maxFilenameLength = 200

// ValidateFilename validates a generated output filename for safety.
// It ensures the filename is a simple basename without path components,
// so a document name derived from a variant can never escape the output
// directory.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 200 characters
//   - No control characters or null bytes
//   - No path separators or parent references
//   - Not a hidden file
func ValidateFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidFilename, "filename cannot be empty")
	}

	if len(name) > maxFilenameLength {
		return New(ErrCodeInvalidFilename, "filename too long (max %d characters)", maxFilenameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidFilename, "filename contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, `/\`) {
		return New(ErrCodeInvalidFilename, "filename cannot contain path separators")
	}

	if name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidFilename, "filename cannot be a hidden file or parent reference")
	}

	return nil
}
