package env

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"nbt/internal/config"
	"nbt/internal/domain"
)

// Check verifies that the execution environment is usable before any
// notebook case starts.
type Check struct {
	config *config.Config
}

// NewCheck creates a new Check
func NewCheck(cfg *config.Config) *Check {
	return &Check{config: cfg}
}

// Verify fails fast with a domain.EnvError if the Jupyter engine or the
// accelerator runtime is absent. Partial execution is never attempted;
// a run with a broken environment produces zero cases.
func (c *Check) Verify() error {
	// Load .env from the workshop root; a missing file is fine
	_ = godotenv.Load(filepath.Join(c.config.ProjectPath, ".env"))

	var missing []string

	if _, err := exec.LookPath(c.config.JupyterBin); err != nil {
		missing = append(missing, c.config.JupyterBin)
	}

	if len(c.config.RuntimeMarkers) > 0 && !c.runtimePresent() {
		missing = append(missing, "accelerator runtime ("+strings.Join(c.config.RuntimeMarkers, " or ")+")")
	}

	if len(missing) > 0 {
		return &domain.EnvError{Missing: missing}
	}
	return nil
}

// runtimePresent reports whether any configured runtime marker exists,
// either as a binary on PATH or as a filesystem path.
func (c *Check) runtimePresent() bool {
	for _, marker := range c.config.RuntimeMarkers {
		if strings.ContainsRune(marker, os.PathSeparator) {
			if _, err := os.Stat(marker); err == nil {
				return true
			}
			continue
		}
		if _, err := exec.LookPath(marker); err == nil {
			return true
		}
	}
	return false
}
