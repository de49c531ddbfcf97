package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Nsfr750/pack/internal/config"
	"github.com/Nsfr750/pack/internal/utils/logger"
	"github.com/Nsfr750/pack/internal/utils/security"
	"github.com/spf13/cobra"
)

// Command-line flags that can override config file settings
var (
	configFile string = "" // Path to config file
	logLevel   string = "" // Empty means use config file value
)

func main() {
	// Initialize global configuration first
	configFilePath := configFile
	if configFilePath == "" {
		configFilePath = config.FindConfigFile()
	}

	globalConfig, err := config.LoadGlobalConfig(configFilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Set global config singleton
	config.SetGlobal(globalConfig)

	// Setup logger with configured level, teeing to the configured log
	// file when one is set
	var cleanup func()
	if globalConfig.Logging.File != "" {
		logPath := globalConfig.Logging.File
		if !filepath.IsAbs(logPath) {
			if err := config.EnsureConfigDir(); err != nil {
				fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
				os.Exit(1)
			}
			logPath = filepath.Join(globalConfig.ConfigDir, logPath)
		}
		var logErr error
		_, cleanup, logErr = logger.InitWithConfig(logger.Config{
			Level:    globalConfig.Logging.Level,
			FilePath: logPath,
		})
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", logErr)
			os.Exit(1)
		}
	} else {
		_, cleanup = logger.InitWithLevel(globalConfig.Logging.Level)
	}
	defer cleanup()

	// Create and execute root command
	rootCmd := createRootCommand()
	security.AttachRecursive(rootCmd, security.DefaultLimits())

	// Handle log level override after flag parsing
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if logLevel != "" {
			// Update both the local config and the global singleton
			globalConfig.Logging.Level = logLevel
			config.SetGlobal(globalConfig) // Update singleton with new log level
			logger.SetLogLevel(logLevel)
		}
	}

	// Log configuration info using global config functions
	log := logger.Logger()
	if configFilePath != "" {
		log.Infof("Using configuration from: %s", configFilePath)
	}
	configDir, _ := config.ConfigDirPath()
	log.Debugf("Config: python=%s, config_dir=%s, temp_dir=%s, language=%s",
		config.PythonExecutable(), configDir, config.TempDir(), config.Language())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// createRootCommand creates and configures the root cobra command with all subcommands
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pack",
		Short: "Python package manager front-end",
		Long: `pack is a workbench for everyday Python packaging chores: scaffolding
new projects, building and signing distributions, installing and
inspecting packages, checking requirement sets for version conflicts,
and uploading releases to PyPI or private indexes.

All packaging work is delegated to the configured Python interpreter's
own tooling (pip, build, twine); pack wraps it with a consistent
interface, a repository store and an interactive dependency browser.

Use 'pack --help' to see available commands.
Use 'pack <command> --help' for more information about a command.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level (debug, info, warn, error)")

	// Add all subcommands
	rootCmd.AddCommand(createInitCommand())
	rootCmd.AddCommand(createBuildCommand())
	rootCmd.AddCommand(createInstallCommand())
	rootCmd.AddCommand(createUninstallCommand())
	rootCmd.AddCommand(createListCommand())
	rootCmd.AddCommand(createShowCommand())
	rootCmd.AddCommand(createCheckCommand())
	rootCmd.AddCommand(createSignCommand())
	rootCmd.AddCommand(createVerifyCommand())
	rootCmd.AddCommand(createUploadCommand())
	rootCmd.AddCommand(createRepoCommand())
	rootCmd.AddCommand(createUICommand())
	rootCmd.AddCommand(createVersionCommand())
	rootCmd.AddCommand(createConfigCommand())
	rootCmd.AddCommand(createInstallCompletionCommand())

	return rootCmd
}
