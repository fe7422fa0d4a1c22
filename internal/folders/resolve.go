package folders

import (
	"errors"
	"regexp"
	"strings"

	"contentops/internal/services"
)

// ErrInvalidFolderReference reports a folder reference that yields no ID.
var ErrInvalidFolderReference = errors.New("invalid folder reference")

var folderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`folders/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`id=([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`([A-Za-z0-9_-]{25,})`),
}

// ResolveFolderID extracts a folder identifier from a bare ID or a Drive URL.
// Patterns are tried in order and the first capture wins. Input without a
// slash that matches nothing is treated as a bare ID.
func ResolveFolderID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", services.Wrap(services.ErrValidation, "folders", "resolve", "Folder reference is empty", ErrInvalidFolderReference)
	}
	for _, pattern := range folderPatterns {
		if match := pattern.FindStringSubmatch(trimmed); len(match) > 1 && match[1] != "" {
			return match[1], nil
		}
	}
	if !strings.Contains(trimmed, "/") {
		return trimmed, nil
	}
	return "", services.Wrap(services.ErrValidation, "folders", "resolve", "Could not extract folder ID from "+trimmed, ErrInvalidFolderReference)
}
