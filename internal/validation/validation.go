// Package validation holds input validation helpers for uploads and forms.
package validation

import (
	"path/filepath"
	"regexp"
	"strings"
)

// unsafeFilenameChars matches everything that is not a letter, digit, dot,
// hyphen, or underscore.
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// AllowedExtensions are the upload formats accepted for resumes.
var AllowedExtensions = map[string]bool{
	"pdf":  true,
	"docx": true,
	"doc":  true,
	"txt":  true,
}

// AllowedFile reports whether a filename carries an accepted extension.
func AllowedFile(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return AllowedExtensions[ext]
}

// SanitizeFilename strips path components and unsafe characters from an
// uploaded filename so it can be stored on disk safely.
func SanitizeFilename(filename string) string {
	// Drop any client-supplied directory parts, Windows separators included.
	filename = filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	filename = unsafeFilenameChars.ReplaceAllString(filename, "_")
	filename = strings.Trim(filename, "._")
	if len(filename) > 128 {
		filename = filename[len(filename)-128:]
	}
	return filename
}

// RequiredFields trims the given values and reports whether all are non-empty.
func RequiredFields(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
