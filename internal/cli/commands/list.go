package commands

import (
	"nbt/internal/config"
	"nbt/internal/discovery"
	"nbt/internal/ui"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config  *config.Config
	scanner *discovery.Scanner
	filter  *discovery.Filter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, scanner *discovery.Scanner, filter *discovery.Filter) *ListCommand {
	return &ListCommand{
		config:  cfg,
		scanner: scanner,
		filter:  filter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cases, err := buildCases(lc.config, lc.scanner, lc.filter)
	if err != nil {
		return err
	}

	ui.PrintNotebookList(cases, lc.config.Flags.Cells)
	return nil
}
