package service

import (
	"path/filepath"
	"strings"

	"doc-digest/internal/domain"
)

// DetectFormat classifies a file by its extension, case-insensitively.
// Anything other than one of domain.SupportedFormats yields domain.FormatUnknown.
func DetectFormat(filename string) domain.FormatKind {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	for _, format := range domain.SupportedFormats() {
		if ext == "."+string(format) {
			return format
		}
	}
	return domain.FormatUnknown
}
