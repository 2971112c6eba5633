package codescope

import (
	"path/filepath"
	"slices"
	"strings"
)

// DefaultExcludedDirs lists directory names that are always skipped.
var DefaultExcludedDirs = []string{"venv", "__pycache__"}

// ShouldExclude reports whether a directory path is skipped by traversal.
// A path is excluded when any of its segments is hidden (starts with "."
// and is neither "." nor "..") or equals a name in DefaultExcludedDirs or
// custom. Matching is exact per segment.
func ShouldExclude(path string, custom ...string) bool {
	for _, seg := range segments(path) {
		if isHidden(seg) {
			return true
		}
		if slices.Contains(DefaultExcludedDirs, seg) || slices.Contains(custom, seg) {
			return true
		}
	}
	return false
}

func isHidden(seg string) bool {
	return strings.HasPrefix(seg, ".") && seg != "." && seg != ".."
}

func segments(path string) []string {
	return strings.FieldsFunc(filepath.ToSlash(path), func(r rune) bool { return r == '/' })
}
