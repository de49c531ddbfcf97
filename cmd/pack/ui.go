package main

import (
	"github.com/Nsfr750/pack/internal/config"
	"github.com/Nsfr750/pack/internal/i18n"
	"github.com/Nsfr750/pack/internal/pip"
	"github.com/Nsfr750/pack/internal/resolver"
	"github.com/Nsfr750/pack/internal/ui"
	"github.com/spf13/cobra"
)

// createUICommand creates the ui subcommand
func createUICommand() *cobra.Command {
	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive dependency browser",
		Long: `Open a full-screen terminal browser over the installed packages:
per-package dependencies, a requirement input for conflict checks, and
an output log. Press 'r' to refresh the package list and 'q' to quit.`,
		Args: cobra.NoArgs,
		RunE: executeUI,
	}

	return uiCmd
}

// executeUI handles the ui command logic
func executeUI(cmd *cobra.Command, args []string) error {
	catalog := i18n.NewCatalog(config.Language())
	browser := ui.New(catalog, pip.NewClient(), resolver.NewPipDetector())
	return browser.Run()
}
