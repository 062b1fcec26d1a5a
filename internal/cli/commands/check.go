package commands

import (
	"nbt/internal/config"
	"nbt/internal/env"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// CheckCommand handles the check command
type CheckCommand struct {
	config *config.Config
	check  *env.Check
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(cfg *config.Config, check *env.Check) *CheckCommand {
	return &CheckCommand{
		config: cfg,
		check:  check,
	}
}

// Execute runs the command
func (cc *CheckCommand) Execute(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if err := cc.check.Verify(); err != nil {
		return err
	}

	color.Green("Environment OK: %s found and accelerator runtime present", cc.config.JupyterBin)
	return nil
}
