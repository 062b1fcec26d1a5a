package domain

import (
	"fmt"
	"strings"
	"time"
)

// DiscoveryError indicates the notebook root directory is missing or unusable.
type DiscoveryError struct {
	Root string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovery failed for %s: %v", e.Root, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// EnvError indicates a required runtime component is absent. No case can
// succeed without it, so the whole run aborts before any case starts.
type EnvError struct {
	Missing []string
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("environment check failed, missing: %s", strings.Join(e.Missing, ", "))
}

// ExecutionError indicates a notebook cell raised an unhandled exception.
type ExecutionError struct {
	Path      string
	CellIndex int
	Ename     string
	Evalue    string
	Traceback []string
}

func (e *ExecutionError) Error() string {
	if e.Ename == "" {
		return fmt.Sprintf("%s: execution failed at cell %d", e.Path, e.CellIndex)
	}
	return fmt.Sprintf("%s: cell %d raised %s: %s", e.Path, e.CellIndex, e.Ename, e.Evalue)
}

// TimeoutError indicates a notebook exceeded its category's wall-clock budget.
type TimeoutError struct {
	Path   string
	Budget time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: execution exceeded %s budget", e.Path, e.Budget)
}

// OutputMismatchError indicates strict comparison found a cell whose captured
// output differs from the stored expected output.
type OutputMismatchError struct {
	Path      string
	CellIndex int
	Expected  string
	Actual    string
}

func (e *OutputMismatchError) Error() string {
	return fmt.Sprintf("%s: output mismatch at cell %d", e.Path, e.CellIndex)
}
