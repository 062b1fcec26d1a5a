package config

import (
	"testing"
)

func TestConfig_GetLabsPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath: ".",
				LabsPath:    "labs",
				Flags:       Flags{},
			},
			expected: "labs",
		},
		{
			name: "with labs flag",
			config: &Config{
				ProjectPath: "/workshop",
				LabsPath:    "labs",
				Flags: Flags{
					LabsPath: "extra-labs",
				},
			},
			expected: "/workshop/extra-labs",
		},
		{
			name: "absolute labs flag",
			config: &Config{
				ProjectPath: "/workshop",
				LabsPath:    "labs",
				Flags: Flags{
					LabsPath: "/absolute/labs",
				},
			},
			expected: "/absolute/labs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetLabsPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}
	if cfg.JupyterBin != DefaultJupyterBin {
		t.Errorf("expected JupyterBin %s, got %s", DefaultJupyterBin, cfg.JupyterBin)
	}
	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("expected %d paths to ignore, got %d", len(DefaultPathsToIgnore), len(cfg.PathsToIgnore))
	}
	if len(cfg.RuntimeMarkers) == 0 {
		t.Error("expected default runtime markers")
	}
}

func TestConfig_GetLockPath(t *testing.T) {
	cfg := New()
	if cfg.GetLockPath() == "" {
		t.Fatal("lock path should never be empty")
	}

	cfg.LockFile = "/var/run/nbt.lock"
	if got := cfg.GetLockPath(); got != "/var/run/nbt.lock" {
		t.Errorf("expected explicit lock file, got %s", got)
	}
}
