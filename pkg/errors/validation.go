package errors

import (
	"strings"
	"unicode"
)

// ValidateParticipantName validates a participant display name.
// Names are the sole identity of participants, so a malformed name corrupts
// the whole roster rather than a single record.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators (names become notification filenames)
//   - Maximum length of 256 characters
func ValidateParticipantName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "participant name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidName, "participant name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "participant name contains control characters")
		}
	}

	// Names are used as notification filenames, so path metacharacters are
	// rejected outright instead of being escaped.
	if strings.ContainsAny(name, `/\`) {
		return New(ErrCodeInvalidName, "participant name cannot contain path separators: %q", name)
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidName, "participant name cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateRosterFilename validates a roster filename for safety.
// It ensures the filename carries a recognized roster extension.
func ValidateRosterFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidRoster, "roster filename cannot be empty")
	}

	lower := strings.ToLower(filename)
	if !strings.HasSuffix(lower, ".csv") && !strings.HasSuffix(lower, ".toml") {
		return New(ErrCodeInvalidFormat, "unsupported roster format: %s (expected .csv or .toml)", filename)
	}

	return nil
}
