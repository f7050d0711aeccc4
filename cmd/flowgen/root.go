package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/magoc/flowgen/api"
	"github.com/magoc/flowgen/config"
	"github.com/magoc/flowgen/constants"
)

var (
	configPath string
	debug      bool
)

// NewRootCmd creates the root 'flowgen' command with persistent flags and subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.ServiceName,
		Short: "Workflow generation service for API specifications",
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Path to flowgen config JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logs")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Load environment variables from .env file, if present
		_ = godotenv.Load()

		if debug {
			_ = os.Setenv(constants.EnvDebug, "1")
		}
	}

	// The per-operation commands build the completion client from the
	// environment on first use.
	svc := api.NewWorkflowService()

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(api.GenerateCLICommands(svc)...)

	return rootCmd
}
