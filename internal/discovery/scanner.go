package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"nbt/internal/domain"
)

// Scanner scans for notebook files in a directory
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	// Checkpoint directories are always excluded
	skipMap[".ipynb_checkpoints"] = true
	return &Scanner{skipDirs: skipMap}
}

// Scan finds all notebooks under root, in walk order. A missing or non-dir
// root yields a domain.DiscoveryError before any case is attempted.
func (s *Scanner) Scan(root string) ([]string, error) {
	var notebooks []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, &domain.DiscoveryError{Root: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &domain.DiscoveryError{Root: root, Err: fmt.Errorf("not a directory")}
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(d.Name(), ".ipynb") {
			notebooks = append(notebooks, path)
		}
		return nil
	})
	if err != nil {
		return nil, &domain.DiscoveryError{Root: root, Err: err}
	}

	return notebooks, nil
}
