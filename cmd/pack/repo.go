package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Nsfr750/pack/internal/repository"
	"github.com/Nsfr750/pack/internal/utils/network"
	"github.com/spf13/cobra"
)

var repoAddFlags struct {
	username   string
	password   string
	setDefault bool
	check      bool
}

// createRepoCommand creates the repo command with subcommands
func createRepoCommand() *cobra.Command {
	repoCmd := &cobra.Command{
		Use:   "repo",
		Short: "Manage package repositories",
		Long: `Manage the named repositories that install and upload commands can
target. The built-in pypi entry is always present and cannot be
removed. Exactly one repository is the default at any time.`,
	}

	// Add subcommands
	repoCmd.AddCommand(createRepoAddCommand())
	repoCmd.AddCommand(createRepoRemoveCommand())
	repoCmd.AddCommand(createRepoListCommand())
	repoCmd.AddCommand(createRepoSetDefaultCommand())

	return repoCmd
}

// createRepoAddCommand creates the repo add subcommand
func createRepoAddCommand() *cobra.Command {
	repoAddCmd := &cobra.Command{
		Use:   "add <name> <url>",
		Short: "Add a repository",
		Args:  cobra.ExactArgs(2),
		RunE:  executeRepoAdd,
	}

	repoAddCmd.Flags().StringVarP(&repoAddFlags.username, "username", "u", "", "Repository username")
	repoAddCmd.Flags().StringVarP(&repoAddFlags.password, "password", "p", "",
		"Repository password (kept in memory only, never persisted)")
	repoAddCmd.Flags().BoolVar(&repoAddFlags.setDefault, "default", false, "Make this the default repository")
	repoAddCmd.Flags().BoolVar(&repoAddFlags.check, "check", false, "Verify the URL is reachable before adding")

	return repoAddCmd
}

// createRepoRemoveCommand creates the repo remove subcommand
func createRepoRemoveCommand() *cobra.Command {
	repoRemoveCmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a repository",
		Args:  cobra.ExactArgs(1),
		RunE:  executeRepoRemove,
	}

	return repoRemoveCmd
}

// createRepoListCommand creates the repo list subcommand
func createRepoListCommand() *cobra.Command {
	repoListCmd := &cobra.Command{
		Use:   "list",
		Short: "List configured repositories",
		Args:  cobra.NoArgs,
		RunE:  executeRepoList,
	}

	return repoListCmd
}

// createRepoSetDefaultCommand creates the repo set-default subcommand
func createRepoSetDefaultCommand() *cobra.Command {
	repoSetDefaultCmd := &cobra.Command{
		Use:   "set-default <name>",
		Short: "Set the default repository",
		Args:  cobra.ExactArgs(1),
		RunE:  executeRepoSetDefault,
	}

	return repoSetDefaultCmd
}

// executeRepoAdd handles the repo add command logic
func executeRepoAdd(cmd *cobra.Command, args []string) error {
	name, url := args[0], args[1]

	if repoAddFlags.check {
		if err := network.CheckURL(url); err != nil {
			return fmt.Errorf("repository URL is not reachable: %w", err)
		}
	}

	manager, err := repository.NewManager()
	if err != nil {
		return err
	}

	if err := manager.Add(repository.Repository{
		Name:      name,
		URL:       url,
		Username:  repoAddFlags.username,
		Password:  repoAddFlags.password,
		IsDefault: repoAddFlags.setDefault,
	}); err != nil {
		return err
	}
	if err := manager.Save(); err != nil {
		return err
	}

	fmt.Printf("Repository %s added\n", name)
	return nil
}

// executeRepoRemove handles the repo remove command logic
func executeRepoRemove(cmd *cobra.Command, args []string) error {
	manager, err := repository.NewManager()
	if err != nil {
		return err
	}

	if err := manager.Remove(args[0]); err != nil {
		return err
	}
	if err := manager.Save(); err != nil {
		return err
	}

	fmt.Printf("Repository %s removed\n", args[0])
	return nil
}

// executeRepoList handles the repo list command logic
func executeRepoList(cmd *cobra.Command, args []string) error {
	manager, err := repository.NewManager()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tURL\tUSERNAME\tDEFAULT")
	for _, repo := range manager.List() {
		def := ""
		if repo.IsDefault {
			def = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", repo.Name, repo.URL, repo.Username, def)
	}
	return w.Flush()
}

// executeRepoSetDefault handles the repo set-default command logic
func executeRepoSetDefault(cmd *cobra.Command, args []string) error {
	manager, err := repository.NewManager()
	if err != nil {
		return err
	}

	if err := manager.SetDefault(args[0]); err != nil {
		return err
	}
	if err := manager.Save(); err != nil {
		return err
	}

	fmt.Printf("Repository %s is now the default\n", args[0])
	return nil
}
