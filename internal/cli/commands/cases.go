package commands

import (
	"fmt"
	"os"
	"sort"

	"nbt/internal/category"
	"nbt/internal/config"
	"nbt/internal/discovery"
	"nbt/internal/domain"
)

// buildCases discovers notebooks, applies the name and category filters and
// classifies each into a timeout category. When a single notebook was
// requested via the flag, discovery is bypassed entirely.
func buildCases(cfg *config.Config, scanner *discovery.Scanner, filter *discovery.Filter) ([]*domain.Case, error) {
	table, err := category.LoadTable(cfg.GetCategoriesPath())
	if err != nil {
		return nil, err
	}
	classifier := category.NewClassifier(table)

	var notebooks []string
	if cfg.Flags.Notebook != "" {
		if _, err := os.Stat(cfg.Flags.Notebook); err != nil {
			return nil, &domain.DiscoveryError{Root: cfg.Flags.Notebook, Err: err}
		}
		notebooks = []string{cfg.Flags.Notebook}
	} else {
		notebooks, err = scanner.Scan(cfg.GetLabsPath())
		if err != nil {
			return nil, err
		}
	}

	if cfg.Flags.NameFilter != "" {
		notebooks = filter.ByName(notebooks, cfg.Flags.NameFilter)
	}

	sort.Strings(notebooks)

	cases := make([]*domain.Case, 0, len(notebooks))
	for _, path := range notebooks {
		name, timeout := classifier.Classify(path)
		if cfg.Flags.Category != "" && name != cfg.Flags.Category {
			continue
		}
		cases = append(cases, domain.NewCase(path, name, timeout))
	}

	if len(cases) == 0 {
		return nil, fmt.Errorf("no notebooks matched under %s", cfg.GetLabsPath())
	}
	return cases, nil
}
