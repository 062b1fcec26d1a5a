package config

import (
	"os"
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	LabsPath    string

	// Execution settings
	JupyterBin  string
	KernelName  string
	LockFile    string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string
	HTMLReportFile string

	// Category table file (external data, relative to project unless absolute)
	CategoriesFile string

	// Directories to skip when scanning
	PathsToIgnore []string

	// Accelerator runtime markers: binaries or paths, at least one must exist
	RuntimeMarkers []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Notebook    string
	LabsPath    string
	NameFilter  string
	Category    string
	HTMLReport  bool
	Fast        bool
	Verbose     bool
	Relaxed     bool
	Update      bool
	Record      bool
	Cells       bool
	Passthrough []string
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		LabsPath:       DefaultLabsPath,
		JupyterBin:     DefaultJupyterBin,
		KernelName:     DefaultKernelName,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		HTMLReportFile: DefaultHTMLReportFile,
		CategoriesFile: DefaultCategoriesFile,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	cfg.RuntimeMarkers = make([]string, len(DefaultRuntimeMarkers))
	copy(cfg.RuntimeMarkers, DefaultRuntimeMarkers)
	return cfg
}

// GetLabsPath returns the notebook root, using the flag if provided
func (c *Config) GetLabsPath() string {
	if c.Flags.LabsPath != "" {
		if filepath.IsAbs(c.Flags.LabsPath) {
			return c.Flags.LabsPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.LabsPath)
	}
	return filepath.Join(c.ProjectPath, c.LabsPath)
}

// GetOutputPath returns the full path to the results JSON file.
// Resolves to an absolute path so run and failures always read/write the
// same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetHTMLReportPath returns the full path to the HTML report file.
func (c *Config) GetHTMLReportPath() string {
	return filepath.Join(c.ProjectPath, c.OutputJSONDir, c.HTMLReportFile)
}

// GetCategoriesPath returns the category table file path.
func (c *Config) GetCategoriesPath() string {
	if filepath.IsAbs(c.CategoriesFile) {
		return c.CategoriesFile
	}
	return filepath.Join(c.ProjectPath, c.CategoriesFile)
}

// GetLockPath returns the path of the accelerator lock file.
func (c *Config) GetLockPath() string {
	if c.LockFile != "" {
		return c.LockFile
	}
	return filepath.Join(os.TempDir(), DefaultLockFileName)
}
