package commands

import (
	"nbt/internal/cli"
	"nbt/internal/config"
	"nbt/internal/discovery"
	"nbt/internal/env"
	"nbt/internal/execution"
	"nbt/internal/report"
	"nbt/internal/storage"
	"nbt/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Check    *CheckCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	check := env.NewCheck(cfg)
	runner := execution.NewRunner(cfg)
	jsonStorage := storage.NewJSONStorage(cfg)
	history := storage.NewHistorySink(cfg)
	formatter := report.NewFormatter(cfg)
	viewer := ui.NewFailureViewer(jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, scanner, filter, check, runner, jsonStorage, history, formatter),
		List:     NewListCommand(cfg, scanner, filter),
		Check:    NewCheckCommand(cfg, check),
		Failures: NewFailuresCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run [-- nbconvert args]",
		Short: "Run workshop notebooks sequentially",
		Long:  "Discover, classify and execute notebooks one at a time against the accelerator, comparing captured cell outputs against the stored ones",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			cfg.Flags.Passthrough = args
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.Notebook, "notebook", "n", "", "Run a single notebook instead of scanning the labs directory")
	runCmd.Flags().StringVarP(&flags.LabsPath, "labs", "l", "", "Directory to scan for notebooks (default: labs under the project root)")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter notebooks by filename pattern (supports wildcards, e.g. '*tensor*')")
	runCmd.Flags().StringVarP(&flags.Category, "category", "c", "", "Run only notebooks in this category")
	runCmd.Flags().BoolVar(&flags.HTMLReport, "html-report", false, "Write an HTML summary next to the JSON results")
	runCmd.Flags().BoolVar(&flags.Fast, "fast", false, "Stop on first failure and keep output terse")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print full engine output for failed notebooks")
	runCmd.Flags().BoolVar(&flags.Relaxed, "relaxed", false, "Only check execution success, ignore output content")
	runCmd.Flags().BoolVar(&flags.Update, "update", false, "Overwrite stored expected outputs with the captured ones")
	runCmd.Flags().BoolVar(&flags.Record, "record", false, "Record run metadata to the history database")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered notebooks",
		Long:  "Scan and classify notebooks without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.LabsPath, "labs", "l", "", "Directory to scan for notebooks")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter notebooks by filename pattern")
	listCmd.Flags().StringVarP(&flags.Category, "category", "c", "", "List only notebooks in this category")
	listCmd.Flags().BoolVar(&flags.Cells, "cells", false, "Open each notebook and show its code cell count")
	rootCmd.AddCommand(listCmd)

	// Check command
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the execution environment",
		Long:  "Check that the Jupyter engine and the accelerator runtime are present without running anything",
		RunE:  c.Check.Execute,
	}
	rootCmd.AddCommand(checkCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View notebook failures interactively",
		Long:  "Display cell failures from the last run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
