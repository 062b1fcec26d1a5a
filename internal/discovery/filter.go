package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters notebook files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// ByName filters notebooks by filename pattern using wildcard matching.
// Supports patterns like "*tensor*" or "lora.ipynb".
func (f *Filter) ByName(notebooks []string, pattern string) []string {
	if pattern == "" {
		return notebooks
	}

	var filtered []string
	for _, nb := range notebooks {
		if matchName(filepath.Base(nb), pattern) {
			filtered = append(filtered, nb)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	// filepath.Match covers * and ? wildcards anchored over the whole name
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	// Plain pattern: substring match
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Wildcard pattern that Match rejected: fall back to requiring every
	// literal segment between wildcards to appear in the name
	parts := strings.Split(pattern, "*")
	hasLiteral := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		hasLiteral = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return hasLiteral
}
