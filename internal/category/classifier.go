package category

import (
	"path/filepath"
	"strings"
	"time"
)

// DefaultName is the category of notebooks no rule matches.
const DefaultName = "Default"

// Rule maps a path substring to a category and timeout.
type Rule struct {
	Match    string `yaml:"match"`
	Category string `yaml:"category"`
	Minutes  int    `yaml:"minutes"`
}

// Table is the declarative category-to-timeout mapping. Adding a category is
// a data change, not a code change.
type Table struct {
	Rules          []Rule `yaml:"rules"`
	DefaultMinutes int    `yaml:"default_minutes"`
}

// Classifier resolves a notebook path to its (category, timeout) pair.
type Classifier struct {
	table Table
}

// NewClassifier creates a Classifier over the given table.
func NewClassifier(table Table) *Classifier {
	return &Classifier{table: table}
}

// Classify returns the category and timeout for a notebook path. The
// longest matching rule wins; unmatched paths get the default timeout.
// Classification is deterministic: the same path always yields the same pair.
func (c *Classifier) Classify(path string) (string, time.Duration) {
	normalized := filepath.ToSlash(path)

	best := -1
	bestLen := 0
	for i, rule := range c.table.Rules {
		if rule.Match == "" {
			continue
		}
		if strings.Contains(normalized, rule.Match) && len(rule.Match) > bestLen {
			best = i
			bestLen = len(rule.Match)
		}
	}

	if best < 0 {
		return DefaultName, time.Duration(c.table.DefaultMinutes) * time.Minute
	}
	rule := c.table.Rules[best]
	return rule.Category, time.Duration(rule.Minutes) * time.Minute
}
