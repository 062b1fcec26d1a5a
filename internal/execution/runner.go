package execution

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"nbt/internal/config"
	"nbt/internal/domain"
	"nbt/internal/notebook"
)

// Outcome is what executing a single notebook produced.
type Outcome struct {
	ProcessOutput string             // Combined stdout/stderr of the execution engine
	Executed      *notebook.Document // Executed notebook with captured outputs, when available
	Duration      time.Duration
	Err           error // Typed domain error, or nil on success
}

// Runner executes one notebook end-to-end against a live kernel session via
// `jupyter nbconvert --execute` in a subprocess.
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run executes the notebook under the case's wall-clock budget. The budget
// covers the whole notebook; on timeout the subprocess is killed and the
// outcome carries a domain.TimeoutError. A raising cell yields a
// domain.ExecutionError with the cell's traceback; cells after the first
// failure are not executed.
func (r *Runner) Run(ctx context.Context, c *domain.Case) Outcome {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	tmpDir, err := os.MkdirTemp("", "nbt-exec-*")
	if err != nil {
		return Outcome{Err: fmt.Errorf("create scratch dir: %w", err), Duration: time.Since(start)}
	}
	defer os.RemoveAll(tmpDir)

	notebookPath := c.Path
	if abs, err := filepath.Abs(notebookPath); err == nil {
		notebookPath = abs
	}

	const outName = "executed.ipynb"
	args := []string{
		"nbconvert", "--to", "notebook", "--execute",
		"--output", outName,
		"--output-dir", tmpDir,
	}
	if r.config.KernelName != "" {
		args = append(args, "--ExecutePreprocessor.kernel_name="+r.config.KernelName)
	}
	args = append(args, r.config.Flags.Passthrough...)
	args = append(args, notebookPath)

	cmd := exec.CommandContext(ctx, r.config.JupyterBin, args...)
	cmd.Env = os.Environ()
	cmd.Dir = r.config.ProjectPath

	output, runErr := cmd.CombinedOutput()
	elapsed := time.Since(start)

	if ctx.Err() == context.DeadlineExceeded {
		return Outcome{
			ProcessOutput: string(output),
			Duration:      elapsed,
			Err:           &domain.TimeoutError{Path: c.Path, Budget: c.Timeout},
		}
	}

	executed, readErr := notebook.Read(filepath.Join(tmpDir, outName))
	if executed != nil {
		if cell, errOut := executed.FirstError(); cell >= 0 {
			return Outcome{
				ProcessOutput: string(output),
				Executed:      executed,
				Duration:      elapsed,
				Err: &domain.ExecutionError{
					Path:      c.Path,
					CellIndex: cell,
					Ename:     errOut.Ename,
					Evalue:    errOut.Evalue,
					Traceback: errOut.Traceback,
				},
			}
		}
	}

	if runErr != nil {
		return Outcome{
			ProcessOutput: string(output),
			Executed:      executed,
			Duration:      elapsed,
			Err: &domain.ExecutionError{
				Path:      c.Path,
				CellIndex: -1,
				Evalue:    firstLines(string(output), 5),
			},
		}
	}
	if readErr != nil {
		return Outcome{
			ProcessOutput: string(output),
			Duration:      elapsed,
			Err:           fmt.Errorf("executed notebook missing: %w", readErr),
		}
	}

	return Outcome{
		ProcessOutput: string(output),
		Executed:      executed,
		Duration:      elapsed,
	}
}

// firstLines trims process output to its first n non-empty lines for error
// summaries; the full output stays on the case result.
func firstLines(s string, n int) string {
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
		if len(kept) == n {
			break
		}
	}
	return strings.Join(kept, "\n")
}
