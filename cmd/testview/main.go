package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"testview/internal/cli"
	"testview/internal/cli/commands"
	"testview/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "testview",
		Short:         "Run tests and view their results",
		Long:          `Runs an external test tool (pytest by default), reads the JUnit XML document it writes and renders the results as a table in the terminal, an interactive viewer or the browser.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
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
		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
