package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Nsfr750/pack/internal/config"
	"github.com/spf13/cobra"
)

// createConfigCommand creates the config command with subcommands
func createConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage global configuration",
	}

	// Add subcommands
	configCmd.AddCommand(createConfigShowCommand())
	configCmd.AddCommand(createConfigInitCommand())

	return configCmd
}

// createConfigShowCommand creates the config show subcommand
func createConfigShowCommand() *cobra.Command {
	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Run:   executeConfigShow,
	}

	return configShowCmd
}

// createConfigInitCommand creates the config init subcommand
func createConfigInitCommand() *cobra.Command {
	configInitCmd := &cobra.Command{
		Use:   "init [config-file]",
		Short: "Initialize a new configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  executeConfigInit,
	}

	return configInitCmd
}

// executeConfigShow shows the current configuration
func executeConfigShow(cmd *cobra.Command, args []string) {
	if configFile != "" {
		fmt.Printf("Configuration file: %s\n", configFile)
	} else {
		fmt.Printf("Configuration file: <using defaults>\n")
	}

	gc := config.Global()
	fmt.Printf("Python executable: %s\n", gc.Python)
	fmt.Printf("Config directory: %s\n", gc.ConfigDir)
	fmt.Printf("Temp directory: %s\n", config.TempDir())
	fmt.Printf("Language: %s\n", gc.Language)
	fmt.Printf("Log level: %s\n", gc.Logging.Level)
	if len(gc.RecentProjects) > 0 {
		fmt.Printf("Recent projects:\n  %s\n", strings.Join(gc.RecentProjects, "\n  "))
	}
}

// executeConfigInit creates a new configuration file
func executeConfigInit(cmd *cobra.Command, args []string) error {
	configPath := "pack.yml" // Default to pack.yml in the current directory
	if len(args) > 0 {
		configPath = args[0]
	}

	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists: %s", configPath)
	}

	// Create default config and save it with explanatory comments
	defaultConfig := config.DefaultGlobalConfig()
	if err := defaultConfig.SaveGlobalConfigWithComments(configPath); err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}

	fmt.Printf("Configuration file created: %s\n", configPath)
	fmt.Printf("Edit the file to customize settings for your environment.\n")
	return nil
}
