// Package main is the entry point for the news-cli application.
// It registers the admin commands (schema migration, session purge, password check)
// and the gRPC client commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/news-api/cmd/news-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "news-cli",
		Short: "news-api administration and client tool",
		Long: `news-cli administers a news-api deployment and talks to its gRPC API.

Admin commands read the same configuration as the server (--config or CONFIG_PATH,
overridden by NEWS_API_* environment variables). Client commands connect to --addr
and send the session token from --token or NEWS_API_TOKEN.`,
		SilenceUsage: true,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitAdminCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize admin commands: %w", err)
	}

	if err := commands.InitAuthCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize auth commands: %w", err)
	}

	if err := commands.InitArticleCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize article commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
