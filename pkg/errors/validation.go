package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxDocumentNameLen bounds document names stored through the API.
const maxDocumentNameLen = 256

// ValidateDocumentName checks a document name before it is stored. Names
// are free-form display strings but must not smuggle path syntax: no
// separators, no traversal sequences, no control characters.
func ValidateDocumentName(name string) error {
	switch {
	case name == "":
		return New(ErrCodeInvalidInput, "document name cannot be empty")
	case len(name) > maxDocumentNameLen:
		return New(ErrCodeInvalidInput, "document name too long (max %d characters)", maxDocumentNameLen)
	case strings.Contains(name, ".."):
		return New(ErrCodeInvalidInput, "document name cannot contain %q", "..")
	case strings.ContainsAny(name, `/\`):
		return New(ErrCodeInvalidInput, "document name cannot contain path separators")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "document name contains control characters")
		}
	}
	return nil
}

// colorRegex matches CSS-style hex colors: #rgb, #rrggbb, or #rrggbbaa.
var colorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidateColor validates a hex color string as used by fills and strokes.
// Accepts #rgb, #rrggbb, and #rrggbbaa forms. An empty string is valid and
// means "inherit from the style chain".
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if !colorRegex.MatchString(color) {
		return New(ErrCodeInvalidInput, "invalid color: %q (expected #rgb, #rrggbb, or #rrggbbaa)", color)
	}
	return nil
}
