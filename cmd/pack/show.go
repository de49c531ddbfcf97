package main

import (
	"fmt"

	"github.com/Nsfr750/pack/internal/pip"
	"github.com/Nsfr750/pack/internal/requirement"
	"github.com/spf13/cobra"
)

// Fields printed by show, in display order.
var showFields = []string{"Name", "Version", "Summary", "Home-page", "Author", "License", "Location"}

// createShowCommand creates the show subcommand
func createShowCommand() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show <package>",
		Short: "Show details and dependencies of an installed package",
		Args:  cobra.ExactArgs(1),
		RunE:  executeShow,
	}

	return showCmd
}

// executeShow handles the show command logic
func executeShow(cmd *cobra.Command, args []string) error {
	client := pip.NewClient()

	fields, err := client.Show(args[0])
	if err != nil {
		return err
	}
	if fields["Name"] == "" {
		return fmt.Errorf("package %s is not installed", args[0])
	}

	for _, key := range showFields {
		if value, ok := fields[key]; ok && value != "" {
			fmt.Printf("%s: %s\n", key, value)
		}
	}

	deps, _ := requirement.ParseList(fields["Requires"])
	fmt.Printf("Requires:")
	if len(deps) == 0 {
		fmt.Printf(" <none>\n")
		return nil
	}
	fmt.Println()
	for _, dep := range deps {
		fmt.Printf("  %s\n", dep.String())
	}
	return nil
}
