package main

import (
	"fmt"
	"path/filepath"

	"github.com/Nsfr750/pack/internal/distops"
	"github.com/Nsfr750/pack/internal/pip"
	"github.com/Nsfr750/pack/internal/scaffold"
	"github.com/spf13/cobra"
)

// createBuildCommand creates the build subcommand
func createBuildCommand() *cobra.Command {
	buildCmd := &cobra.Command{
		Use:   "build [directory]",
		Short: "Build sdist and wheel distributions for a project",
		Long: `Build source and wheel distributions for the Python project in the given
directory (default: the current directory). Artifacts are placed in the
project's dist/ directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: executeBuild,
	}

	return buildCmd
}

// executeBuild handles the build command logic
func executeBuild(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving project directory: %w", err)
	}

	// setup.py metadata is informational; pyproject-only projects still build.
	if info, err := scaffold.ReadProjectInfo(absDir); err == nil {
		fmt.Printf("Building %s %s\n", info.Name, info.Version)
	}

	client := pip.NewClient()
	if err := client.Build(absDir); err != nil {
		return err
	}

	files, err := distops.FindDistFiles(absDir)
	if err != nil {
		return err
	}
	fmt.Printf("Build completed: %d file(s) in dist/\n", len(files))
	for _, f := range files {
		fmt.Printf("  %s\n", filepath.Base(f))
	}

	rememberProject(absDir)
	return nil
}
