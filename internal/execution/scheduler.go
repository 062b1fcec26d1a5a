package execution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nbt/internal/compare"
	"nbt/internal/config"
	"nbt/internal/domain"
	"nbt/internal/notebook"
	"nbt/internal/ui"
)

// CaseRunner executes a single notebook case.
type CaseRunner interface {
	Run(ctx context.Context, c *domain.Case) Outcome
}

// Scheduler runs cases strictly one at a time, in the order given. The
// accelerator cannot be shared across concurrent notebook runs, so at most
// one case is ever in flight; the held DeviceToken is the proof.
type Scheduler struct {
	config     *config.Config
	runner     CaseRunner
	comparator compare.Comparator
	progress   *ui.Progress
}

// NewScheduler creates a new Scheduler
func NewScheduler(cfg *config.Config, runner CaseRunner, comparator compare.Comparator) *Scheduler {
	return &Scheduler{
		config:     cfg,
		runner:     runner,
		comparator: comparator,
	}
}

// SetProgress sets the progress bar for the run.
func (s *Scheduler) SetProgress(p *ui.Progress) {
	s.progress = p
}

// Execute runs all cases sequentially and returns the aggregated report.
// In fail-fast mode, cases after the first failure are never started.
// Per-case errors are recorded on the case, never propagated; the returned
// error covers scheduling problems only.
func (s *Scheduler) Execute(ctx context.Context, token *DeviceToken, cases []*domain.Case) (*domain.RunReport, error) {
	if token == nil {
		return nil, fmt.Errorf("scheduler requires a held accelerator token")
	}

	report := &domain.RunReport{}
	start := time.Now()
	failFast := s.config.Flags.Fast

	var passed, failed, skipped int
	for _, c := range cases {
		result, failures := s.runCase(ctx, c)
		report.Cases = append(report.Cases, result)
		report.Failures = append(report.Failures, failures...)

		switch c.Status {
		case domain.StatusPassed:
			passed++
		case domain.StatusFailed:
			failed++
		case domain.StatusSkipped:
			skipped++
		}
		if s.progress != nil {
			s.progress.Update(passed, failed, skipped)
		}

		if failFast && c.Status == domain.StatusFailed {
			break
		}
	}
	if s.progress != nil {
		s.progress.Finish()
	}

	report.Summarize(time.Since(start), s.config.Flags.Relaxed, failFast)
	return report, nil
}

// runCase drives one case through pending -> running -> terminal.
func (s *Scheduler) runCase(ctx context.Context, c *domain.Case) (domain.CaseResult, []domain.CellFailure) {
	result := domain.CaseResult{
		Path:     c.Path,
		Category: c.Category,
	}

	source, err := notebook.Read(c.Path)
	if err != nil {
		c.Transition(domain.StatusRunning)
		c.Transition(domain.StatusFailed)
		result.Status = c.Status
		result.Error = err.Error()
		return result, nil
	}

	if source.SkipRequested() {
		c.Transition(domain.StatusSkipped)
		result.Status = c.Status
		return result, nil
	}

	c.Transition(domain.StatusRunning)
	out := s.runner.Run(ctx, c)
	result.Output = out.ProcessOutput
	result.Duration = out.Duration

	if out.Err != nil {
		c.Transition(domain.StatusFailed)
		result.Status = c.Status
		result.Error = out.Err.Error()
		return result, failuresFor(c, out.Err)
	}

	// Explicit golden update replaces the stored outputs; nothing is left
	// to compare against afterwards.
	if s.config.Flags.Update {
		if err := compare.UpdateExpected(c.Path, source, out.Executed); err != nil {
			c.Transition(domain.StatusFailed)
			result.Status = c.Status
			result.Error = err.Error()
			return result, nil
		}
		c.Transition(domain.StatusPassed)
		result.Status = c.Status
		return result, nil
	}

	if err := s.comparator.Compare(c.Path, source, out.Executed); err != nil {
		c.Transition(domain.StatusFailed)
		result.Status = c.Status
		result.Error = err.Error()
		return result, failuresFor(c, err)
	}

	c.Transition(domain.StatusPassed)
	result.Status = c.Status
	return result, nil
}

// failuresFor converts a case error into cell-level failure records for the
// report and the failures viewer.
func failuresFor(c *domain.Case, err error) []domain.CellFailure {
	var execErr *domain.ExecutionError
	if errors.As(err, &execErr) {
		return []domain.CellFailure{{
			NotebookPath: c.Path,
			Category:     c.Category,
			CellIndex:    execErr.CellIndex,
			Ename:        execErr.Ename,
			Evalue:       execErr.Evalue,
			Traceback:    execErr.Traceback,
		}}
	}

	var timeoutErr *domain.TimeoutError
	if errors.As(err, &timeoutErr) {
		return []domain.CellFailure{{
			NotebookPath: c.Path,
			Category:     c.Category,
			CellIndex:    -1,
			Ename:        "Timeout",
			Evalue:       fmt.Sprintf("execution exceeded %s budget", timeoutErr.Budget),
		}}
	}

	var mismatch *domain.OutputMismatchError
	if errors.As(err, &mismatch) {
		return []domain.CellFailure{{
			NotebookPath: c.Path,
			Category:     c.Category,
			CellIndex:    mismatch.CellIndex,
			Ename:        "OutputMismatch",
			Evalue:       fmt.Sprintf("expected %q, got %q", mismatch.Expected, mismatch.Actual),
		}}
	}

	return []domain.CellFailure{{
		NotebookPath: c.Path,
		Category:     c.Category,
		CellIndex:    -1,
		Ename:        "Error",
		Evalue:       err.Error(),
	}}
}
