package domain

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a notebook case.
type Status string

const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Terminal reports whether a case in this status can no longer change.
func (s Status) Terminal() bool {
	switch s {
	case StatusPassed, StatusFailed, StatusSkipped:
		return true
	}
	return false
}

// Case represents one notebook scheduled for execution.
type Case struct {
	Path     string        // Full path to the notebook file
	Category string        // Timeout category derived from the path
	Timeout  time.Duration // Wall-clock budget for the whole notebook
	Status   Status
}

// NewCase creates a pending case for a classified notebook.
func NewCase(path, category string, timeout time.Duration) *Case {
	return &Case{
		Path:     path,
		Category: category,
		Timeout:  timeout,
		Status:   StatusPending,
	}
}

// Transition moves the case to the next status. Legal moves are
// pending -> running and running -> passed/failed/skipped; a pending case
// may also go straight to skipped (skip marker, never executed).
func (c *Case) Transition(next Status) error {
	switch {
	case c.Status == StatusPending && next == StatusRunning:
	case c.Status == StatusPending && next == StatusSkipped:
	case c.Status == StatusRunning && next.Terminal():
	default:
		return fmt.Errorf("illegal case transition %s -> %s for %s", c.Status, next, c.Path)
	}
	c.Status = next
	return nil
}
