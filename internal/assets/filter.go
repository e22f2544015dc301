package assets

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultInclude matches the image and font files a portfolio ships.
var DefaultInclude = []string{
	"**/*.png",
	"**/*.jpg",
	"**/*.jpeg",
	"**/*.gif",
	"**/*.webp",
	"**/*.svg",
	"**/*.ico",
	"**/*.woff2",
}

// skippedDirs are never descended into.
var skippedDirs = []string{
	".git",
	"node_modules",
	".DS_Store",
	".idea",
	".vscode",
}

func shouldSkipDir(name string) bool {
	for _, d := range skippedDirs {
		if strings.EqualFold(name, d) {
			return true
		}
	}
	return false
}

// MatchesInclude reports whether relPath matches any include pattern. An
// empty pattern list includes everything.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// MatchesExclude reports whether relPath matches any exclude pattern.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny tries each pattern against the full slash path and against the
// base name, so "*.png" matches nested files too.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if ok, err := doublestar.Match(pattern, normalized); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
