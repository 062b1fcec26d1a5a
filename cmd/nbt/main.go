package main

import (
	"fmt"
	"os"

	"nbt/internal/cli"
	"nbt/internal/cli/commands"
	"nbt/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "nbt",
		Short:   "Workshop notebook tester",
		Long:    `A sequential test runner for workshop Jupyter notebooks. Discovers notebooks, classifies them into timeout categories and executes them one at a time against the accelerator, comparing captured outputs against the stored ones.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
