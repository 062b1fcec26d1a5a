package commands

import (
	"fmt"

	"nbt/internal/compare"
	"nbt/internal/config"
	"nbt/internal/discovery"
	"nbt/internal/env"
	"nbt/internal/execution"
	"nbt/internal/report"
	"nbt/internal/storage"
	"nbt/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	check     *env.Check
	runner    *execution.Runner
	storage   storage.Storage
	history   *storage.HistorySink
	formatter *report.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	check *env.Check,
	runner *execution.Runner,
	st storage.Storage,
	history *storage.HistorySink,
	formatter *report.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		check:     check,
		runner:    runner,
		storage:   st,
		history:   history,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	// Verify the environment before touching the accelerator
	if err := rc.check.Verify(); err != nil {
		return err
	}

	// Discover and classify notebooks
	cases, err := buildCases(rc.config, rc.scanner, rc.filter)
	if err != nil {
		return err
	}

	// Claim the accelerator for the whole run
	token, err := execution.AcquireDevice(rc.config.GetLockPath())
	if err != nil {
		return err
	}
	defer token.Release()

	comparator := compare.ForMode(rc.config.Flags.Relaxed)
	scheduler := execution.NewScheduler(rc.config, rc.runner, comparator)

	if !rc.config.Flags.Fast {
		scheduler.SetProgress(ui.NewProgress(len(cases)))
	}

	// Execute notebooks sequentially
	runReport, err := scheduler.Execute(cmd.Context(), token, cases)
	if err != nil {
		return err
	}

	// Save results
	if err := rc.storage.Save(runReport); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	// Record run history if requested and configured
	if rc.config.Flags.Record && rc.history.Enabled() {
		if err := rc.history.Record(runReport); err != nil {
			color.Yellow("warning: failed to record run history: %v", err)
		}
	}

	// Print results
	rc.formatter.PrintCases(runReport)
	rc.formatter.PrintSummary(runReport)
	if rc.config.Flags.Verbose {
		rc.formatter.PrintVerboseOutput(runReport)
	}

	if rc.config.Flags.HTMLReport {
		path := rc.config.GetHTMLReportPath()
		if err := report.WriteHTML(runReport, path); err != nil {
			return fmt.Errorf("failed to write HTML report: %w", err)
		}
		color.Cyan("HTML report written to %s", path)
	}

	if runReport.Meta.Failed > 0 {
		return fmt.Errorf("%d notebook(s) failed", runReport.Meta.Failed)
	}
	return nil
}
