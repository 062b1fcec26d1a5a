package commands

import (
	"fmt"

	"nbt/internal/config"
	"nbt/internal/storage"
	"nbt/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer) *FailuresCommand {
	return &FailuresCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	report, err := fc.storage.Load()
	if err != nil {
		return fmt.Errorf("no saved run found, execute 'nbt run' first: %w", err)
	}

	if len(report.Failures) == 0 {
		color.Green("No failures in the last run")
		return nil
	}

	return fc.viewer.View(report)
}
