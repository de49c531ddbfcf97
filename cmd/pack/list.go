package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/Nsfr750/pack/internal/pip"
	"github.com/spf13/cobra"
)

// createListCommand creates the list subcommand
func createListCommand() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List installed packages",
		Args:  cobra.NoArgs,
		RunE:  executeList,
	}

	return listCmd
}

// executeList handles the list command logic
func executeList(cmd *cobra.Command, args []string) error {
	client := pip.NewClient()
	installed, err := client.ListInstalled()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(installed))
	for name := range installed {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PACKAGE\tVERSION")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\n", name, installed[name])
	}
	return w.Flush()
}
