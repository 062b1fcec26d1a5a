package storage

import (
	"testing"
	"time"

	"nbt/internal/config"
	"nbt/internal/domain"
)

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()

	report := &domain.RunReport{
		Cases: []domain.CaseResult{
			{Path: "labs/NxD/a.ipynb", Category: "NxD", Status: domain.StatusPassed},
			{Path: "labs/vLLM/b.ipynb", Category: "vLLM", Status: domain.StatusFailed, Error: "cell 3 raised"},
		},
		Failures: []domain.CellFailure{
			{NotebookPath: "labs/vLLM/b.ipynb", Category: "vLLM", CellIndex: 3, Ename: "RuntimeError", Evalue: "boom"},
		},
	}
	report.Summarize(42*time.Second, false, false)

	st := NewJSONStorage(cfg)
	if err := st.Save(report); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Meta.TotalNotebooks != 2 || loaded.Meta.Passed != 1 || loaded.Meta.Failed != 1 {
		t.Errorf("unexpected meta after round trip: %+v", loaded.Meta)
	}
	if len(loaded.Failures) != 1 || loaded.Failures[0].Ename != "RuntimeError" {
		t.Errorf("unexpected failures after round trip: %+v", loaded.Failures)
	}
	if loaded.Cases[1].Status != domain.StatusFailed {
		t.Errorf("case status lost across round trip: %+v", loaded.Cases[1])
	}
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()

	if _, err := NewJSONStorage(cfg).Load(); err == nil {
		t.Fatal("expected error loading a report that was never saved")
	}
}
