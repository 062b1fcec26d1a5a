package domain

import "time"

// CaseResult records the outcome of executing one notebook case.
type CaseResult struct {
	Path     string        `json:"path"`
	Category string        `json:"category"`
	Status   Status        `json:"status"`
	Output   string        `json:"output,omitempty"` // Raw process output from the execution engine
	Error    string        `json:"error,omitempty"`  // Rendered error for failed cases
	Duration time.Duration `json:"duration_ns"`
}

// RunMeta contains metadata about a whole run.
type RunMeta struct {
	TotalNotebooks  int     `json:"total_notebooks"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Skipped         int     `json:"skipped"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Relaxed         bool    `json:"relaxed"`
	FailFast        bool    `json:"fail_fast"`
	Timestamp       string  `json:"timestamp"`
}

// RunReport is the complete output of a run: ordered case results plus
// cell-level failure details. Immutable once generated, except for the
// Resolved flag the failures viewer toggles.
type RunReport struct {
	Meta     RunMeta       `json:"meta"`
	Cases    []CaseResult  `json:"cases"`
	Failures []CellFailure `json:"failures"`
}

// Summarize fills Meta counts from the recorded cases.
func (r *RunReport) Summarize(duration time.Duration, relaxed, failFast bool) {
	r.Meta = RunMeta{
		TotalNotebooks:  len(r.Cases),
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Relaxed:         relaxed,
		FailFast:        failFast,
		Timestamp:       time.Now().Format(time.RFC3339),
	}
	for _, c := range r.Cases {
		switch c.Status {
		case StatusPassed:
			r.Meta.Passed++
		case StatusFailed:
			r.Meta.Failed++
		case StatusSkipped:
			r.Meta.Skipped++
		}
	}
}
