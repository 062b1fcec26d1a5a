package cli

import "nbt/internal/config"

// Flags holds command-line flags
type Flags struct {
	Notebook   string
	LabsPath   string
	NameFilter string
	Category   string
	HTMLReport bool
	Fast       bool
	Verbose    bool
	Relaxed    bool
	Update     bool
	Record     bool
	Cells      bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Notebook:   f.Notebook,
		LabsPath:   f.LabsPath,
		NameFilter: f.NameFilter,
		Category:   f.Category,
		HTMLReport: f.HTMLReport,
		Fast:       f.Fast,
		Verbose:    f.Verbose,
		Relaxed:    f.Relaxed,
		Update:     f.Update,
		Record:     f.Record,
		Cells:      f.Cells,
	}
}
