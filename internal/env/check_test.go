package env

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"nbt/internal/config"
	"nbt/internal/domain"
)

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatalf("failed to write executable: %v", err)
	}
	return path
}

func TestCheck_Verify(t *testing.T) {
	dir := t.TempDir()
	engine := writeExecutable(t, dir, "jupyter")
	marker := filepath.Join(dir, "neuron")
	if err := os.MkdirAll(marker, 0755); err != nil {
		t.Fatalf("failed to create marker dir: %v", err)
	}

	t.Run("passes when engine and runtime exist", func(t *testing.T) {
		cfg := config.New()
		cfg.ProjectPath = dir
		cfg.JupyterBin = engine
		cfg.RuntimeMarkers = []string{marker}

		if err := NewCheck(cfg).Verify(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing engine yields EnvError", func(t *testing.T) {
		cfg := config.New()
		cfg.ProjectPath = dir
		cfg.JupyterBin = filepath.Join(dir, "no-such-jupyter")
		cfg.RuntimeMarkers = []string{marker}

		err := NewCheck(cfg).Verify()
		var ee *domain.EnvError
		if !errors.As(err, &ee) {
			t.Fatalf("expected EnvError, got %v", err)
		}
	})

	t.Run("missing runtime yields EnvError", func(t *testing.T) {
		cfg := config.New()
		cfg.ProjectPath = dir
		cfg.JupyterBin = engine
		cfg.RuntimeMarkers = []string{filepath.Join(dir, "no-such-runtime")}

		err := NewCheck(cfg).Verify()
		var ee *domain.EnvError
		if !errors.As(err, &ee) {
			t.Fatalf("expected EnvError, got %v", err)
		}
		if len(ee.Missing) != 1 {
			t.Errorf("expected one missing entry, got %v", ee.Missing)
		}
	})

	t.Run("no markers configured skips runtime check", func(t *testing.T) {
		cfg := config.New()
		cfg.ProjectPath = dir
		cfg.JupyterBin = engine
		cfg.RuntimeMarkers = nil

		if err := NewCheck(cfg).Verify(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
