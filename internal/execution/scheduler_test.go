package execution

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"nbt/internal/compare"
	"nbt/internal/config"
	"nbt/internal/domain"
	"nbt/internal/notebook"
)

// stubRunner returns canned outcomes per notebook path and records the
// order cases were started in.
type stubRunner struct {
	outcomes map[string]Outcome
	started  []string
}

func (s *stubRunner) Run(ctx context.Context, c *domain.Case) Outcome {
	s.started = append(s.started, c.Path)
	return s.outcomes[c.Path]
}

func seedNotebook(t *testing.T, dir, name string, skip bool) string {
	t.Helper()
	doc := &notebook.Document{
		Cells: []notebook.Cell{
			{
				Type:   "code",
				Source: notebook.MultilineText{"print('ok')"},
				Outputs: []notebook.Output{
					{Type: "stream", Name: "stdout", Text: notebook.MultilineText{"ok\n"}},
				},
			},
		},
		Metadata: map[string]interface{}{},
		NBFormat: 4,
	}
	if skip {
		doc.Metadata["nbt"] = map[string]interface{}{"skip": true}
	}
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create notebook dir: %v", err)
	}
	if err := notebook.Write(path, doc); err != nil {
		t.Fatalf("failed to seed notebook: %v", err)
	}
	return path
}

func matchingOutcome(t *testing.T, path string) Outcome {
	t.Helper()
	doc, err := notebook.Read(path)
	if err != nil {
		t.Fatalf("failed to read seeded notebook: %v", err)
	}
	return Outcome{Executed: doc, Duration: time.Second}
}

func acquireToken(t *testing.T) *DeviceToken {
	t.Helper()
	token, err := AcquireDevice(filepath.Join(t.TempDir(), "accelerator.lock"))
	if err != nil {
		t.Fatalf("failed to acquire token: %v", err)
	}
	t.Cleanup(func() { token.Release() })
	return token
}

func TestScheduler_Execute(t *testing.T) {
	dir := t.TempDir()
	passPath := seedNotebook(t, dir, "labs/NxD/a.ipynb", false)
	failPath := seedNotebook(t, dir, "labs/vLLM/b.ipynb", false)

	runner := &stubRunner{outcomes: map[string]Outcome{
		passPath: matchingOutcome(t, passPath),
		failPath: {Err: &domain.ExecutionError{Path: failPath, CellIndex: 0, Ename: "RuntimeError", Evalue: "boom"}},
	}}

	cfg := config.New()
	s := NewScheduler(cfg, runner, compare.ForMode(false))

	cases := []*domain.Case{
		domain.NewCase(passPath, "NxD", 30*time.Minute),
		domain.NewCase(failPath, "vLLM", 30*time.Minute),
	}

	report, err := s.Execute(context.Background(), acquireToken(t), cases)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Meta.Passed != 1 || report.Meta.Failed != 1 {
		t.Errorf("expected 1 passed / 1 failed, got %+v", report.Meta)
	}
	if len(report.Failures) != 1 || report.Failures[0].Ename != "RuntimeError" {
		t.Errorf("unexpected failures: %+v", report.Failures)
	}
	if cases[0].Status != domain.StatusPassed || cases[1].Status != domain.StatusFailed {
		t.Errorf("unexpected case statuses: %s, %s", cases[0].Status, cases[1].Status)
	}
	// Cases ran in discovery order
	if len(runner.started) != 2 || runner.started[0] != passPath {
		t.Errorf("unexpected start order: %v", runner.started)
	}
}

func TestScheduler_RequiresToken(t *testing.T) {
	s := NewScheduler(config.New(), &stubRunner{}, compare.ForMode(false))
	if _, err := s.Execute(context.Background(), nil, nil); err == nil {
		t.Fatal("expected error without a device token")
	}
}

func TestScheduler_FailFast(t *testing.T) {
	dir := t.TempDir()
	first := seedNotebook(t, dir, "labs/NxD/fails.ipynb", false)
	second := seedNotebook(t, dir, "labs/NxD/would_pass.ipynb", false)
	third := seedNotebook(t, dir, "labs/NKI/would_pass_too.ipynb", false)

	runner := &stubRunner{outcomes: map[string]Outcome{
		first:  {Err: &domain.TimeoutError{Path: first, Budget: time.Minute}},
		second: matchingOutcome(t, second),
		third:  matchingOutcome(t, third),
	}}

	cfg := config.New()
	cfg.Flags.Fast = true
	s := NewScheduler(cfg, runner, compare.ForMode(false))

	cases := []*domain.Case{
		domain.NewCase(first, "NxD", time.Minute),
		domain.NewCase(second, "NxD", time.Minute),
		domain.NewCase(third, "NKI", time.Minute),
	}

	report, err := s.Execute(context.Background(), acquireToken(t), cases)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Exactly the cases up to and including the first failure ran
	if len(runner.started) != 1 {
		t.Errorf("expected only the failing case to run, got %v", runner.started)
	}
	if len(report.Cases) != 1 || report.Cases[0].Status != domain.StatusFailed {
		t.Errorf("unexpected report cases: %+v", report.Cases)
	}
	if report.Failures[0].Ename != "Timeout" {
		t.Errorf("expected timeout failure record, got %+v", report.Failures)
	}
	if cases[1].Status != domain.StatusPending || cases[2].Status != domain.StatusPending {
		t.Error("cases after the first failure must never start")
	}
}

func TestScheduler_SkipMarker(t *testing.T) {
	dir := t.TempDir()
	skipped := seedNotebook(t, dir, "labs/Hyperpod/manual.ipynb", true)

	runner := &stubRunner{outcomes: map[string]Outcome{}}
	s := NewScheduler(config.New(), runner, compare.ForMode(false))

	cases := []*domain.Case{domain.NewCase(skipped, "Default", time.Minute)}
	report, err := s.Execute(context.Background(), acquireToken(t), cases)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(runner.started) != 0 {
		t.Error("skip-marked notebook must not be executed")
	}
	if report.Meta.Skipped != 1 || cases[0].Status != domain.StatusSkipped {
		t.Errorf("expected skipped case, got %+v", report.Meta)
	}
}

func TestScheduler_OutputMismatch(t *testing.T) {
	dir := t.TempDir()
	path := seedNotebook(t, dir, "labs/NxD/golden.ipynb", false)

	// Executed copy drifts from the stored expected output
	drifted, err := notebook.Read(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	drifted.Cells[0].Outputs[0].Text = notebook.MultilineText{"different\n"}

	runner := &stubRunner{outcomes: map[string]Outcome{
		path: {Executed: drifted, Duration: time.Second},
	}}

	t.Run("strict fails on drift", func(t *testing.T) {
		cfg := config.New()
		cases := []*domain.Case{domain.NewCase(path, "NxD", time.Minute)}
		report, err := NewScheduler(cfg, runner, compare.ForMode(false)).
			Execute(context.Background(), acquireToken(t), cases)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Meta.Failed != 1 {
			t.Errorf("expected strict failure, got %+v", report.Meta)
		}
		if report.Failures[0].Ename != "OutputMismatch" || report.Failures[0].CellIndex != 0 {
			t.Errorf("expected mismatch at cell 0, got %+v", report.Failures[0])
		}
	})

	t.Run("relaxed passes on drift", func(t *testing.T) {
		cfg := config.New()
		cfg.Flags.Relaxed = true
		cases := []*domain.Case{domain.NewCase(path, "NxD", time.Minute)}
		report, err := NewScheduler(cfg, runner, compare.ForMode(true)).
			Execute(context.Background(), acquireToken(t), cases)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Meta.Passed != 1 {
			t.Errorf("relaxed mode must ignore content drift, got %+v", report.Meta)
		}
		if !report.Meta.Relaxed {
			t.Error("expected relaxed flag recorded in meta")
		}
	})

	t.Run("update rewrites the golden outputs", func(t *testing.T) {
		cfg := config.New()
		cfg.Flags.Update = true
		cases := []*domain.Case{domain.NewCase(path, "NxD", time.Minute)}
		report, err := NewScheduler(cfg, runner, compare.ForMode(false)).
			Execute(context.Background(), acquireToken(t), cases)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Meta.Passed != 1 {
			t.Errorf("update run should pass, got %+v", report.Meta)
		}

		updated, err := notebook.Read(path)
		if err != nil {
			t.Fatalf("reread failed: %v", err)
		}
		if got := updated.Cells[0].Outputs[0].Text.String(); got != "different\n" {
			t.Errorf("expected updated golden output, got %q", got)
		}
	})
}
