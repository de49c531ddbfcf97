package main

import (
	"github.com/Nsfr750/pack/internal/pip"
	"github.com/spf13/cobra"
)

// createUninstallCommand creates the uninstall subcommand
func createUninstallCommand() *cobra.Command {
	uninstallCmd := &cobra.Command{
		Use:   "uninstall <package...>",
		Short: "Uninstall packages with pip",
		Args:  cobra.MinimumNArgs(1),
		RunE:  executeUninstall,
	}

	return uninstallCmd
}

// executeUninstall handles the uninstall command logic
func executeUninstall(cmd *cobra.Command, args []string) error {
	client := pip.NewClient()
	for _, name := range args {
		if err := client.Uninstall(name); err != nil {
			return err
		}
	}
	return nil
}
