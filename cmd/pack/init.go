package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Nsfr750/pack/internal/config"
	"github.com/Nsfr750/pack/internal/scaffold"
	"github.com/spf13/cobra"
)

var initFlags struct {
	template    string
	name        string
	version     string
	description string
	author      string
	email       string
	license     string
}

// createInitCommand creates the init subcommand
func createInitCommand() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a new Python project from a template",
		Long: `Create a new Python project skeleton in the given directory (default:
the current directory). The project name defaults to the directory name.

Available templates: ` + strings.Join(scaffold.Templates(), ", "),
		Args: cobra.MaximumNArgs(1),
		RunE: executeInit,
	}

	initCmd.Flags().StringVarP(&initFlags.template, "template", "t", "basic",
		"Project template ("+strings.Join(scaffold.Templates(), ", ")+")")
	initCmd.Flags().StringVar(&initFlags.name, "name", "", "Project name (default: directory name)")
	initCmd.Flags().StringVar(&initFlags.version, "version", "", "Initial version")
	initCmd.Flags().StringVar(&initFlags.description, "description", "", "Short project description")
	initCmd.Flags().StringVar(&initFlags.author, "author", "", "Author name")
	initCmd.Flags().StringVar(&initFlags.email, "email", "", "Author email")
	initCmd.Flags().StringVar(&initFlags.license, "license", "", "License identifier")

	return initCmd
}

// executeInit handles the init command logic
func executeInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving project directory: %w", err)
	}

	name := initFlags.name
	if name == "" {
		name = filepath.Base(absDir)
	}

	info := scaffold.ProjectInfo{
		Name:        name,
		Version:     initFlags.version,
		Description: initFlags.description,
		Author:      initFlags.author,
		Email:       initFlags.email,
		License:     initFlags.license,
	}

	if err := scaffold.Create(absDir, initFlags.template, info); err != nil {
		return err
	}

	rememberProject(absDir)

	fmt.Printf("Project %s created at %s\n", name, absDir)
	return nil
}

// rememberProject records a project directory in the recent list. The
// config file is only rewritten when one was loaded from disk.
func rememberProject(dir string) {
	gc := config.Global()
	gc.AddRecentProject(dir)

	if path := config.FindConfigFile(); path != "" {
		if err := gc.SaveGlobalConfig(path); err != nil {
			fmt.Printf("Warning: could not update recent projects: %v\n", err)
		}
	}
}
