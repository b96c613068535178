package fsadapter

import (
	"path/filepath"
	"strings"

	"github.com/jgivc/weatherdata/internal/common"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName brings a name to NFC so that composed and decomposed Hangul compare equal.
func NormalizeName(s string) string {
	return norm.NFC.String(s)
}

// IsHidden reports whether a directory entry is a hidden or system marker.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "#")
}

// CleanSegment normalizes a user supplied path segment and rejects anything
// that could leave the directory it is joined to.
func CleanSegment(s string) (string, error) {
	s = NormalizeName(s)

	if s == "" || s == "." || s == ".." || strings.ContainsAny(s, "/\\\x00") {
		return "", common.BadRequestError("invalid path segment: %q", s)
	}

	return s, nil
}

func joinSegments(root string, segments ...string) (string, error) {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, root)

	for _, segment := range segments {
		s, err := CleanSegment(segment)
		if err != nil {
			return "", err
		}

		parts = append(parts, s)
	}

	return filepath.Join(parts...), nil
}
