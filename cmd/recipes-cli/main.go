// Package main is the entry point for the recipes-cli application.
// It initializes the root command and registers the database and user
// sub-commands for the CLI, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/PHedro/recipes/cmd/recipes-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "recipes-cli",
		Short: "Operator CLI for the recipes service",
		Long: `recipes-cli is a command-line tool for operating the recipes service.
It provisions, seeds and drops the database and creates user accounts
together with the API tokens that grant them access.

Commands read the same YAML configuration as the REST API. Point them at
it with --config or the CONFIG_PATH environment variable.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register database commands
	if err := commands.InitDBCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize database commands: %w", err)
	}

	// Register user commands
	if err := commands.InitUserCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
