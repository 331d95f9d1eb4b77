package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters test files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters test files by name pattern using wildcard matching
// Supports patterns like "*test_user.py" or "*payment*"
func (f *Filter) FilterByName(tests []string, pattern string) []string {
	if pattern == "" {
		return tests
	}

	var filtered []string

	for _, test := range tests {
		// Match against just the filename from the full path
		if f.Match(filepath.Base(test), pattern) {
			filtered = append(filtered, test)
		}
	}

	return filtered
}

// Match reports whether testName matches pattern. An empty pattern matches everything.
func (f *Filter) Match(testName, pattern string) bool {
	if pattern == "" {
		return true
	}

	// Try to match using filepath.Match (supports * and ? wildcards)
	matched, err := filepath.Match(pattern, testName)
	if err == nil && matched {
		return true
	}

	// If no wildcards, do a simple contains check
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(testName, pattern)
	}

	// filepath.Match anchors the whole name; fall back to finding every
	// non-empty part between wildcards in order, for patterns like "*payment*"
	if !strings.Contains(pattern, "*") {
		return false
	}
	hasNonEmptyPart := false
	offset := 0
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		hasNonEmptyPart = true
		i := strings.Index(testName[offset:], part)
		if i < 0 {
			return false
		}
		offset += i + len(part)
	}
	return hasNonEmptyPart
}
