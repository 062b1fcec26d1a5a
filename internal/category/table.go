package category

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTable mirrors the workshop's built-in categories: model compilation
// and fine-tuning notebooks get long budgets, kernel labs short ones.
func DefaultTable() Table {
	return Table{
		Rules: []Rule{
			{Match: "NxD", Category: "NxD", Minutes: 30},
			{Match: "FineTuning", Category: "FineTuning", Minutes: 60},
			{Match: "vLLM", Category: "vLLM", Minutes: 30},
			{Match: "NKI", Category: "NKI", Minutes: 15},
		},
		DefaultMinutes: 15,
	}
}

// LoadTable reads the category table from a YAML file. A missing file is not
// an error: the built-in defaults apply.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultTable(), nil
		}
		return Table{}, fmt.Errorf("read category table %s: %w", path, err)
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return Table{}, fmt.Errorf("parse category table %s: %w", path, err)
	}
	if table.DefaultMinutes <= 0 {
		table.DefaultMinutes = DefaultTable().DefaultMinutes
	}
	for i, rule := range table.Rules {
		if rule.Match == "" {
			return Table{}, fmt.Errorf("category table %s: rule %d has an empty match", path, i)
		}
		if rule.Minutes <= 0 {
			return Table{}, fmt.Errorf("category table %s: rule %q has no timeout", path, rule.Match)
		}
		if rule.Category == "" {
			table.Rules[i].Category = rule.Match
		}
	}
	return table, nil
}
